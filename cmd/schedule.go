package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tvm"
	"github.com/etnz/tvm/date"
	"github.com/etnz/tvm/renderer"
	"github.com/google/subcommands"
)

type scheduleCmd struct {
	outputFlags
	rateFlags
	calendarFlags
	principal string
	periods   int
	first     string
	roll      string
	exact     bool
	termsOnly bool
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "print the amortization schedule of a loan" }
func (*scheduleCmd) Usage() string {
	return `tvm schedule -principal <amount> -rate <annual rate> -periods <n> [-first <date>]

  Prints every installment of a fixed payment loan, split into principal and
  interest, with the outstanding balance after it.

  Amounts are rounded to the -currency minor unit, or to -places digits. The
  last installment repays the remaining balance: it absorbs the rounding and
  may differ from the others by a few cents.

  With -first, installments are dated every -every period from that date and
  rolled onto business days with -roll.

Usage Examples:
$ tvm schedule -principal 1000 -rate 5% -periods 12 -currency EUR
$ tvm schedule -principal 200000 -rate 3.5% -periods 240 -first 2025-01-31 -roll modified_following

`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	c.outputFlags.SetFlags(f)
	c.rateFlags.SetFlags(f)
	c.calendarFlags.SetFlags(f)
	f.StringVar(&c.principal, "principal", "", "amount borrowed")
	f.IntVar(&c.periods, "periods", 0, "number of payments")
	f.StringVar(&c.first, "first", "", "due date of the first installment")
	f.StringVar(&c.roll, "roll", "following", "business day convention of due dates: unadjusted, following, modified_following, preceding or modified_preceding")
	f.BoolVar(&c.exact, "exact", false, "do not round the installments")
	f.BoolVar(&c.termsOnly, "terms", false, "print the loan terms only")
}

// builder returns the schedule builder configured by the flags.
func (c *scheduleCmd) builder() (tvm.Builder, error) {
	var b tvm.Builder
	mode, err := c.mode()
	if err != nil {
		return b, err
	}
	switch {
	case c.exact:
	case c.currency != "":
		if b, err = b.ForCurrency(c.currency, mode); err != nil {
			return b, err
		}
	default:
		b = b.Rounded(int32(c.places), mode)
	}
	if c.first == "" {
		return b, nil
	}
	first, err := dateFlag("first", c.first)
	if err != nil {
		return b, err
	}
	every, err := c.period()
	if err != nil {
		return b, err
	}
	roll, err := date.ParseRoll(c.roll)
	if err != nil {
		return b, err
	}
	cal, err := c.calendar()
	if err != nil {
		return b, err
	}
	return b.WithDueDates(first, every, cal, roll), nil
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	principal, err := decimalFlag("principal", c.principal)
	if err != nil {
		return usageError("%v", err)
	}
	rate, err := c.perPeriod()
	if err != nil {
		return usageError("%v", err)
	}
	amounts, err := c.amounts()
	if err != nil {
		return usageError("%v", err)
	}
	b, err := c.builder()
	if err != nil {
		return usageError("%v", err)
	}

	s, err := b.Build(principal, rate, c.periods)
	if err != nil {
		return failure(err)
	}
	logger.Debug().Str("installment", s.Installment().String()).Int("periods", s.Len()).Msg("schedule built")

	if c.json {
		return printJSON(s)
	}
	printMarkdown(renderer.RenderLoan(renderer.NewLoan(s, amounts, c.termsOnly)))
	return subcommands.ExitSuccess
}
