package cmd

import (
	"context"
	"flag"
	"strconv"

	"github.com/etnz/tvm"
	"github.com/etnz/tvm/renderer"
	"github.com/google/subcommands"
)

type paymentCmd struct {
	outputFlags
	rateFlags
	principal string
	periods   int
}

func (*paymentCmd) Name() string     { return "payment" }
func (*paymentCmd) Synopsis() string { return "compute the fixed installment of a loan" }
func (*paymentCmd) Usage() string {
	return `tvm payment -principal <amount> -rate <annual rate> -periods <n> [-every monthly]

  Computes the fixed installment repaying a loan of principal in n payments.
  The annual rate is divided by the number of payments per year, use -periodic
  to give a per period rate instead.

Usage Examples:
# 5% a year, 12 monthly payments.
$ tvm payment -principal 1000 -rate 5% -periods 12

`
}

func (c *paymentCmd) SetFlags(f *flag.FlagSet) {
	c.outputFlags.SetFlags(f)
	c.rateFlags.SetFlags(f)
	f.StringVar(&c.principal, "principal", "", "amount borrowed")
	f.IntVar(&c.periods, "periods", 0, "number of payments")
}

func (c *paymentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	pmt, err := tvm.Payment(principal, rate, c.periods)
	if err != nil {
		return failure(err)
	}

	if c.json {
		return printJSON(struct {
			Principal tvm.Decimal `json:"principal"`
			Rate      tvm.Decimal `json:"rate"`
			Periods   int         `json:"periods"`
			Payment   tvm.Decimal `json:"payment"`
		}{principal, rate, c.periods, pmt})
	}
	printMarkdown(renderer.ValueMarkdown("Payment", amounts.Format(pmt), [][]string{
		{"Principal", amounts.Format(principal)},
		{"Rate per period", renderer.Percent(rate, 4)},
		{"Periods", strconv.Itoa(c.periods)},
	}))
	return subcommands.ExitSuccess
}

type balanceCmd struct {
	outputFlags
	rateFlags
	principal string
	periods   int
	paid      int
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "compute the outstanding principal of a loan" }
func (*balanceCmd) Usage() string {
	return `tvm balance -principal <amount> -rate <annual rate> -periods <n> -paid <k>

  Computes the principal still due after k of the n installments are paid.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	c.outputFlags.SetFlags(f)
	c.rateFlags.SetFlags(f)
	f.StringVar(&c.principal, "principal", "", "amount borrowed")
	f.IntVar(&c.periods, "periods", 0, "number of payments")
	f.IntVar(&c.paid, "paid", 0, "number of payments made")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	balance, err := tvm.RemainingBalance(principal, rate, c.periods, c.paid)
	if err != nil {
		return failure(err)
	}

	if c.json {
		return printJSON(struct {
			Principal tvm.Decimal `json:"principal"`
			Rate      tvm.Decimal `json:"rate"`
			Periods   int         `json:"periods"`
			Paid      int         `json:"paid"`
			Balance   tvm.Decimal `json:"balance"`
		}{principal, rate, c.periods, c.paid, balance})
	}
	printMarkdown(renderer.ValueMarkdown("Remaining Balance", amounts.Format(balance), [][]string{
		{"Principal", amounts.Format(principal)},
		{"Rate per period", renderer.Percent(rate, 4)},
		{"Payments made", strconv.Itoa(c.paid) + " of " + strconv.Itoa(c.periods)},
	}))
	return subcommands.ExitSuccess
}
