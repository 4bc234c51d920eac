package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/tvm"
	md "github.com/nao1215/markdown"
)

// NPVMarkdown renders the discounting of each flow at rate and their sum.
func NPVMarkdown(flows tvm.CashFlow, rate tvm.Decimal, a Amounts) (string, error) {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Net Present Value at %s", Percent(rate, 4)))
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Period", "Amount", "Present Value"},
	}
	for t, amount := range flows {
		pv, err := tvm.PresentValue(amount, rate, tvm.NewFromInt(int64(t)))
		if err != nil {
			return "", err
		}
		table.Rows = append(table.Rows, []string{strconv.Itoa(t), a.Format(amount), a.Format(pv)})
	}
	npv, err := tvm.NPV(flows, rate)
	if err != nil {
		return "", err
	}
	table.Rows = append(table.Rows, []string{md.Bold("NPV"), "", md.Bold(a.Format(npv))})
	doc.Table(table)
	return doc.String(), nil
}

// IRRMarkdown renders the internal rate of return of flows.
func IRRMarkdown(flows tvm.CashFlow, irr tvm.Decimal, a Amounts) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Internal Rate of Return")
	invested, returned := tvm.Zero, tvm.Zero
	for _, amount := range flows {
		if amount.IsNegative() {
			invested = invested.Sub(amount)
		} else {
			returned = returned.Add(amount)
		}
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("IRR"), md.Bold(Percent(irr, 4))},
		Rows: [][]string{
			{"Periods", strconv.Itoa(len(flows) - 1)},
			{"Invested", a.Format(invested)},
			{"Returned", a.Format(returned)},
		},
	})
	return doc.String()
}

// XIRRMarkdown renders the internal rate of return of dated flows.
func XIRRMarkdown(flows *tvm.DatedCashFlow, irr tvm.Decimal, a Amounts) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	first, _ := flows.First()
	last, _ := flows.Latest()
	doc.H1(fmt.Sprintf("Internal Rate of Return from %s to %s", first, last))
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("XIRR"), md.Bold(Percent(irr, 4))},
	}
	for on, amount := range flows.Values() {
		table.Rows = append(table.Rows, []string{on.String(), a.Format(amount)})
	}
	doc.Table(table)
	return doc.String()
}
