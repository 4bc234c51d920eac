package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
)

// ValueMarkdown renders a computed value and the inputs it comes from: the
// value is the table header, each input a row.
func ValueMarkdown(title, value string, inputs [][]string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold(title), md.Bold(value)},
		Rows:      inputs,
	})
	return doc.String()
}
