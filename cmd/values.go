package cmd

import (
	"context"
	"flag"
	"strconv"

	"github.com/etnz/tvm"
	"github.com/etnz/tvm/renderer"
	"github.com/google/subcommands"
)

// valueJSON is the JSON output of single value commands.
type valueJSON struct {
	Value tvm.Decimal `json:"value"`
}

type pvCmd struct {
	outputFlags
	amount  string
	rate    string
	periods string
}

func (*pvCmd) Name() string     { return "pv" }
func (*pvCmd) Synopsis() string { return "discount a future amount to its present value" }
func (*pvCmd) Usage() string {
	return `tvm pv -amount <future value> -rate <rate per period> -periods <n>

  Computes amount / (1+rate)^n. n may be fractional.
`
}

func (c *pvCmd) SetFlags(f *flag.FlagSet) {
	c.outputFlags.SetFlags(f)
	f.StringVar(&c.amount, "amount", "", "future value")
	f.StringVar(&c.rate, "rate", "", "rate per period, as a fraction or a percentage")
	f.StringVar(&c.periods, "periods", "", "number of periods")
}

func (c *pvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, rate, periods, amounts, err := c.parse(c.amount, c.rate, c.periods)
	if err != nil {
		return usageError("%v", err)
	}
	pv, err := tvm.PresentValue(amount, rate, periods)
	if err != nil {
		return failure(err)
	}
	if c.json {
		return printJSON(valueJSON{pv})
	}
	printMarkdown(renderer.ValueMarkdown("Present Value", amounts.Format(pv), [][]string{
		{"Future value", amounts.Format(amount)},
		{"Rate per period", renderer.Percent(rate, 4)},
		{"Periods", periods.String()},
	}))
	return subcommands.ExitSuccess
}

// parse reads the amount, rate and periods flags common to pv and fv.
func (o *outputFlags) parse(amount, rate, periods string) (a, r, n tvm.Decimal, amounts renderer.Amounts, err error) {
	if a, err = decimalFlag("amount", amount); err != nil {
		return
	}
	if r, err = rateFlag("rate", rate); err != nil {
		return
	}
	if n, err = decimalFlag("periods", periods); err != nil {
		return
	}
	amounts, err = o.amounts()
	return
}

type fvCmd struct {
	outputFlags
	amount  string
	rate    string
	periods string
}

func (*fvCmd) Name() string     { return "fv" }
func (*fvCmd) Synopsis() string { return "grow a present amount to its future value" }
func (*fvCmd) Usage() string {
	return `tvm fv -amount <principal> -rate <rate per period> -periods <n>

  Computes amount × (1+rate)^n. n may be fractional.
`
}

func (c *fvCmd) SetFlags(f *flag.FlagSet) {
	c.outputFlags.SetFlags(f)
	f.StringVar(&c.amount, "amount", "", "present value")
	f.StringVar(&c.rate, "rate", "", "rate per period, as a fraction or a percentage")
	f.StringVar(&c.periods, "periods", "", "number of periods")
}

func (c *fvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, rate, periods, amounts, err := c.parse(c.amount, c.rate, c.periods)
	if err != nil {
		return usageError("%v", err)
	}
	fv, err := tvm.FutureValue(amount, rate, periods)
	if err != nil {
		return failure(err)
	}
	if c.json {
		return printJSON(valueJSON{fv})
	}
	printMarkdown(renderer.ValueMarkdown("Future Value", amounts.Format(fv), [][]string{
		{"Present value", amounts.Format(amount)},
		{"Rate per period", renderer.Percent(rate, 4)},
		{"Periods", periods.String()},
	}))
	return subcommands.ExitSuccess
}

// annuityCmd values a series of equal end of period payments, at its end
// (annuity-fv) or one period before the first payment (annuity-pv).
type annuityCmd struct {
	outputFlags
	future  bool
	payment string
	rate    string
	periods int
}

func (c *annuityCmd) Name() string {
	if c.future {
		return "annuity-fv"
	}
	return "annuity-pv"
}

func (c *annuityCmd) Synopsis() string {
	if c.future {
		return "compute the future value of equal periodic payments"
	}
	return "compute the present value of equal periodic payments"
}

func (c *annuityCmd) Usage() string {
	return "tvm " + c.Name() + ` -payment <amount> -rate <rate per period> -periods <n>

  Values n payments made at the end of each period.
`
}

func (c *annuityCmd) SetFlags(f *flag.FlagSet) {
	c.outputFlags.SetFlags(f)
	f.StringVar(&c.payment, "payment", "", "amount of each payment")
	f.StringVar(&c.rate, "rate", "", "rate per period, as a fraction or a percentage")
	f.IntVar(&c.periods, "periods", 0, "number of payments")
}

func (c *annuityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	payment, err := decimalFlag("payment", c.payment)
	if err != nil {
		return usageError("%v", err)
	}
	rate, err := rateFlag("rate", c.rate)
	if err != nil {
		return usageError("%v", err)
	}
	amounts, err := c.amounts()
	if err != nil {
		return usageError("%v", err)
	}

	value, title := tvm.Decimal{}, "Annuity Present Value"
	if c.future {
		title = "Annuity Future Value"
		value, err = tvm.AnnuityFutureValue(payment, rate, c.periods)
	} else {
		value, err = tvm.AnnuityPresentValue(payment, rate, c.periods)
	}
	if err != nil {
		return failure(err)
	}
	if c.json {
		return printJSON(valueJSON{value})
	}
	printMarkdown(renderer.ValueMarkdown(title, amounts.Format(value), [][]string{
		{"Payment", amounts.Format(payment)},
		{"Rate per period", renderer.Percent(rate, 4)},
		{"Periods", strconv.Itoa(c.periods)},
	}))
	return subcommands.ExitSuccess
}

type compoundCmd struct {
	outputFlags
	principal string
	rate      string
	time      string
	n         int
}

func (*compoundCmd) Name() string     { return "compound" }
func (*compoundCmd) Synopsis() string { return "compound a principal n times per unit of time" }
func (*compoundCmd) Usage() string {
	return `tvm compound -principal <amount> -rate <rate per unit> -time <t> [-n <times per unit>]

  Computes principal × (1 + rate/n)^(n×t).
`
}

func (c *compoundCmd) SetFlags(f *flag.FlagSet) {
	c.outputFlags.SetFlags(f)
	f.StringVar(&c.principal, "principal", "", "amount invested")
	f.StringVar(&c.rate, "rate", "", "rate per unit of time, usually a year")
	f.StringVar(&c.time, "time", "", "number of units of time")
	f.IntVar(&c.n, "n", 1, "compounding periods per unit of time")
}

func (c *compoundCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	principal, err := decimalFlag("principal", c.principal)
	if err != nil {
		return usageError("%v", err)
	}
	rate, err := rateFlag("rate", c.rate)
	if err != nil {
		return usageError("%v", err)
	}
	t, err := decimalFlag("time", c.time)
	if err != nil {
		return usageError("%v", err)
	}
	amounts, err := c.amounts()
	if err != nil {
		return usageError("%v", err)
	}
	value, err := tvm.CompoundAmount(principal, rate, t, c.n)
	if err != nil {
		return failure(err)
	}
	if c.json {
		return printJSON(valueJSON{value})
	}
	printMarkdown(renderer.ValueMarkdown("Compound Amount", amounts.Format(value), [][]string{
		{"Principal", amounts.Format(principal)},
		{"Rate", renderer.Percent(rate, 4)},
		{"Time", t.String()},
		{"Compounded", strconv.Itoa(c.n) + " times per unit"},
	}))
	return subcommands.ExitSuccess
}

type earCmd struct {
	outputFlags
	rateFlags
}

func (*earCmd) Name() string     { return "ear" }
func (*earCmd) Synopsis() string { return "convert a nominal annual rate to an effective one" }
func (*earCmd) Usage() string {
	return `tvm ear -rate <nominal annual rate> [-every monthly]

  Computes (1 + rate/m)^m - 1 where m is the number of compounding periods
  per year.
`
}

func (c *earCmd) SetFlags(f *flag.FlagSet) {
	c.outputFlags.SetFlags(f)
	f.StringVar(&c.rate, "rate", "", "nominal annual rate, as a fraction (0.05) or a percentage (5%)")
	f.StringVar(&c.every, "every", "monthly", "compounding frequency: daily, weekly, monthly, quarterly or yearly")
}

func (c *earCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	nominal, err := rateFlag("rate", c.rate)
	if err != nil {
		return usageError("%v", err)
	}
	every, err := c.period()
	if err != nil {
		return usageError("%v", err)
	}
	rs := tvm.Compounded(nominal, every)
	ear, err := rs.Effective()
	if err != nil {
		return failure(err)
	}
	if c.json {
		return printJSON(valueJSON{ear})
	}
	printMarkdown(renderer.ValueMarkdown("Effective Annual Rate", renderer.Percent(ear, 4), [][]string{
		{"Nominal rate", renderer.Percent(nominal, 4)},
		{"Compounded", every.String()},
	}))
	return subcommands.ExitSuccess
}
