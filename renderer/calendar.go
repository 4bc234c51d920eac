package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/tvm/date"
	md "github.com/nao1215/markdown"
)

// BusinessDaysMarkdown renders the business day count of a range and the
// holidays that fall on weekdays within it.
func BusinessDaysMarkdown(cal date.Calendar, r date.Range) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Business Days from %s to %s", r.From, r.To))
	weekend := make([]string, 0, 2)
	for _, wd := range cal.Weekend() {
		weekend = append(weekend, wd.String())
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Business days"), md.Bold(fmt.Sprint(cal.CountBusinessDays(r.From, r.To)))},
		Rows: [][]string{
			{"Calendar days", fmt.Sprint(r.Days())},
			{"Weekend", strings.Join(weekend, ", ")},
		},
	})
	var out strings.Builder
	out.WriteString(doc.String())
	ConditionalBlock(&out, func(w io.Writer) bool {
		var holidays []string
		for _, h := range cal.Holidays() {
			if r.Contains(h) && !cal.IsWeekend(h) {
				holidays = append(holidays, fmt.Sprintf("%s (%s)", h, h.Weekday()))
			}
		}
		if len(holidays) == 0 {
			return false
		}
		hdoc := md.NewMarkdown(w)
		hdoc.PlainText("")
		hdoc.H2("Holidays")
		hdoc.BulletList(holidays...)
		return hdoc.Build() == nil
	})
	return out.String()
}
