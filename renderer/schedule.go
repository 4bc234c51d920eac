package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/tvm"
	md "github.com/nao1215/markdown"
)

// Loan is the view of an amortization schedule rendered by RenderLoan.
type Loan struct {
	Principal     string
	Rate          string
	Periods       int
	Installment   string
	TotalInterest string
	TotalPayment  string
	Table         string // empty to render the terms only
}

// NewLoan formats a schedule, with its table of entries unless termsOnly.
func NewLoan(s *tvm.Schedule, a Amounts, termsOnly bool) *Loan {
	payment, _, interest := s.Totals()
	l := &Loan{
		Principal:     a.Format(s.Principal()),
		Rate:          Percent(s.Rate(), 4),
		Periods:       s.Len(),
		Installment:   a.Format(s.Installment()),
		TotalInterest: a.Format(interest),
		TotalPayment:  a.Format(payment),
	}
	if !termsOnly {
		l.Table = ScheduleTable(s, a)
	}
	return l
}

// RenderLoan renders a Loan to a markdown string.
func RenderLoan(l *Loan) string {
	partials := map[string]string{
		"loan_terms":    "loan_terms.md",
		"loan_schedule": "loan_schedule.md",
	}
	return renderTemplate("loan", "loan.md", partials, l)
}

// ScheduleTable renders the entries of s as a markdown table. A Due column is
// added when the installments have due dates.
func ScheduleTable(s *tvm.Schedule, a Amounts) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"#", "Payment", "Principal", "Interest", "Balance"},
	}
	dated := false
	for e := range s.All() {
		if e.Period == 1 && !e.Due.IsZero() {
			dated = true
			table.Header = append([]string{"#", "Due"}, table.Header[1:]...)
			table.Alignment = append([]md.TableAlignment{md.AlignRight, md.AlignLeft}, table.Alignment[1:]...)
		}
		row := []string{strconv.Itoa(e.Period)}
		if dated {
			row = append(row, e.Due.String())
		}
		row = append(row,
			a.Format(e.Payment),
			a.Format(e.Principal),
			a.Format(e.Interest),
			a.Format(e.EndingBalance),
		)
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)
	return doc.String()
}
