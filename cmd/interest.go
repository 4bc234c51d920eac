package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/tvm"
	"github.com/etnz/tvm/date"
	"github.com/etnz/tvm/renderer"
	"github.com/google/subcommands"
)

type interestCmd struct {
	outputFlags
	principal string
	rate      string
	time      string
	from, to  string
	dayCount  string
}

func (*interestCmd) Name() string     { return "interest" }
func (*interestCmd) Synopsis() string { return "compute simple interest" }
func (*interestCmd) Usage() string {
	return `tvm interest -principal <amount> -rate <annual rate> (-time <years> | -from <date> -to <date>)

  Computes principal × rate × time. With -from and -to, time is the year
  fraction between the two dates under the -daycount convention: act/360,
  act/365, act/act, 30/360 or 30e/360.

Usage Examples:
$ tvm interest -principal 1000 -rate 5% -time 2
$ tvm interest -principal 200000 -rate 5% -from 2025-01-15 -to 2025-07-15 -daycount act/360

`
}

func (c *interestCmd) SetFlags(f *flag.FlagSet) {
	c.outputFlags.SetFlags(f)
	f.StringVar(&c.principal, "principal", "", "amount lent")
	f.StringVar(&c.rate, "rate", "", "annual rate, as a fraction or a percentage")
	f.StringVar(&c.time, "time", "", "accrual time in years")
	f.StringVar(&c.from, "from", "", "start of the accrual period")
	f.StringVar(&c.to, "to", "", "end of the accrual period")
	f.StringVar(&c.dayCount, "daycount", cfg.DayCount, "day count convention of -from and -to")
}

func (c *interestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	principal, err := decimalFlag("principal", c.principal)
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

	var interest tvm.Decimal
	var period []string
	switch {
	case c.time != "" && (c.from != "" || c.to != ""):
		return usageError("-time and -from/-to are exclusive")
	case c.time != "":
		t, err := decimalFlag("time", c.time)
		if err != nil {
			return usageError("%v", err)
		}
		interest = tvm.SimpleInterest(principal, rate, t)
		period = []string{"Time", t.String() + " years"}
	default:
		from, err := dateFlag("from", c.from)
		if err != nil {
			return usageError("%v", err)
		}
		to, err := dateFlag("to", c.to)
		if err != nil {
			return usageError("%v", err)
		}
		convention, err := date.ParseDayCount(c.dayCount)
		if err != nil {
			return usageError("%v", err)
		}
		interest, err = tvm.AccruedInterest(principal, rate, from, to, convention)
		if err != nil {
			return failure(err)
		}
		num, den := convention.YearFraction(from, to)
		period = []string{"Period", fmt.Sprintf("%s to %s, %d/%d %s", from, to, num, den, convention)}
	}

	if c.json {
		return printJSON(valueJSON{interest})
	}
	printMarkdown(renderer.ValueMarkdown("Interest", amounts.Format(interest), [][]string{
		{"Principal", amounts.Format(principal)},
		{"Rate", renderer.Percent(rate, 4)},
		period,
	}))
	return subcommands.ExitSuccess
}
