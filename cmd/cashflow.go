package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/tvm"
	"github.com/etnz/tvm/date"
	"github.com/etnz/tvm/renderer"
	"github.com/google/subcommands"
)

// parseFlows parses one amount per argument, period 0 first.
func parseFlows(args []string) (tvm.CashFlow, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("missing cash flows")
	}
	flows := make(tvm.CashFlow, 0, len(args))
	for i, arg := range args {
		a, err := tvm.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("flow %d: %w", i, err)
		}
		flows = append(flows, a)
	}
	return flows, nil
}

// parseDatedFlows parses "date=amount" arguments.
func parseDatedFlows(args []string) (*tvm.DatedCashFlow, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("missing cash flows")
	}
	var flows tvm.DatedCashFlow
	for _, arg := range args {
		on, amount, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("%q is not a date=amount flow", arg)
		}
		d, err := date.Parse(on)
		if err != nil {
			return nil, err
		}
		a, err := tvm.Parse(amount)
		if err != nil {
			return nil, fmt.Errorf("flow on %s: %w", d, err)
		}
		// Flows on the same day add up.
		flows.Merge(d, a, tvm.Decimal.Add)
	}
	return &flows, nil
}

// solverFlags tune the IRR search.
type solverFlags struct {
	guess         string
	maxIterations int
	tolerance     string
}

func (s *solverFlags) SetFlags(f *flag.FlagSet) {
	def := tvm.NewSolver()
	f.StringVar(&s.guess, "guess", def.Guess.String(), "starting rate of the search")
	f.IntVar(&s.maxIterations, "max-iterations", def.MaxIterations, "maximum number of iterations")
	f.StringVar(&s.tolerance, "tolerance", def.Tolerance.String(), "convergence tolerance")
}

func (s *solverFlags) solver() (tvm.Solver, error) {
	guess, err := rateFlag("guess", s.guess)
	if err != nil {
		return tvm.Solver{}, err
	}
	tolerance, err := decimalFlag("tolerance", s.tolerance)
	if err != nil {
		return tvm.Solver{}, err
	}
	return tvm.Solver{Guess: guess, MaxIterations: s.maxIterations, Tolerance: tolerance}, nil
}

type npvCmd struct {
	outputFlags
	rate string
}

func (*npvCmd) Name() string     { return "npv" }
func (*npvCmd) Synopsis() string { return "compute the net present value of cash flows" }
func (*npvCmd) Usage() string {
	return `tvm npv -rate <rate per period> <flow 0> <flow 1> ...

  Discounts each flow t at (1+rate)^t and sums them. Outflows are negative.
  Use -- before the flows if the first one is negative.

Usage Examples:
$ tvm npv -rate 10% -- -1000 300 400 500

`
}

func (c *npvCmd) SetFlags(f *flag.FlagSet) {
	c.outputFlags.SetFlags(f)
	f.StringVar(&c.rate, "rate", "", "discount rate per period")
}

func (c *npvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rate, err := rateFlag("rate", c.rate)
	if err != nil {
		return usageError("%v", err)
	}
	flows, err := parseFlows(f.Args())
	if err != nil {
		return usageError("%v", err)
	}
	amounts, err := c.amounts()
	if err != nil {
		return usageError("%v", err)
	}

	if c.json {
		npv, err := tvm.NPV(flows, rate)
		if err != nil {
			return failure(err)
		}
		return printJSON(struct {
			Rate tvm.Decimal `json:"rate"`
			NPV  tvm.Decimal `json:"npv"`
		}{rate, npv})
	}
	md, err := renderer.NPVMarkdown(flows, rate, amounts)
	if err != nil {
		return failure(err)
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

type irrCmd struct {
	outputFlags
	solverFlags
}

func (*irrCmd) Name() string     { return "irr" }
func (*irrCmd) Synopsis() string { return "compute the internal rate of return of cash flows" }
func (*irrCmd) Usage() string {
	return `tvm irr <flow 0> <flow 1> ...

  Finds the rate per period at which the net present value of the flows is
  zero. Flows must contain at least one outflow and one inflow.
  Use -- before the flows if the first one is negative.

Usage Examples:
$ tvm irr -- -1000 300 400 500

`
}

func (c *irrCmd) SetFlags(f *flag.FlagSet) {
	c.outputFlags.SetFlags(f)
	c.solverFlags.SetFlags(f)
}

func (c *irrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	flows, err := parseFlows(f.Args())
	if err != nil {
		return usageError("%v", err)
	}
	s, err := c.solver()
	if err != nil {
		return usageError("%v", err)
	}
	amounts, err := c.amounts()
	if err != nil {
		return usageError("%v", err)
	}

	irr, err := s.IRR(flows)
	if err != nil {
		return failure(err)
	}
	if c.json {
		return printJSON(struct {
			IRR tvm.Decimal `json:"irr"`
		}{irr})
	}
	printMarkdown(renderer.IRRMarkdown(flows, irr, amounts))
	return subcommands.ExitSuccess
}

type xirrCmd struct {
	outputFlags
	solverFlags
}

func (*xirrCmd) Name() string     { return "xirr" }
func (*xirrCmd) Synopsis() string { return "compute the annual internal rate of return of dated cash flows" }
func (*xirrCmd) Usage() string {
	return `tvm xirr <date>=<amount> ...

  Finds the annual rate at which the flows, discounted over 365 days years
  from the first date, sum to zero.

Usage Examples:
$ tvm xirr 2024-01-01=-1000 2024-06-30=50 2025-01-01=1050

`
}

func (c *xirrCmd) SetFlags(f *flag.FlagSet) {
	c.outputFlags.SetFlags(f)
	c.solverFlags.SetFlags(f)
}

func (c *xirrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	flows, err := parseDatedFlows(f.Args())
	if err != nil {
		return usageError("%v", err)
	}
	s, err := c.solver()
	if err != nil {
		return usageError("%v", err)
	}
	amounts, err := c.amounts()
	if err != nil {
		return usageError("%v", err)
	}

	irr, err := s.XIRR(flows)
	if err != nil {
		return failure(err)
	}
	if c.json {
		return printJSON(struct {
			XIRR tvm.Decimal `json:"xirr"`
		}{irr})
	}
	printMarkdown(renderer.XIRRMarkdown(flows, irr, amounts))
	return subcommands.ExitSuccess
}
