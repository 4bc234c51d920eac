package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/etnz/tvm"
	"github.com/etnz/tvm/date"
	"github.com/etnz/tvm/renderer"
	"github.com/google/subcommands"
)

type bizdaysCmd struct {
	calendarFlags
	json     bool
	from, to string
}

func (*bizdaysCmd) Name() string     { return "bizdays" }
func (*bizdaysCmd) Synopsis() string { return "count business days between two dates" }
func (*bizdaysCmd) Usage() string {
	return `tvm bizdays -from <date> -to <date> [-holidays <file>]

  Counts business days from -from to -to, both included. The count is 0 when
  -to is before -from.

Usage Examples:
$ tvm bizdays -from 2023-04-17 -to 2023-04-21

`
}

func (c *bizdaysCmd) SetFlags(f *flag.FlagSet) {
	c.calendarFlags.SetFlags(f)
	f.BoolVar(&c.json, "json", false, "print the result as JSON")
	f.StringVar(&c.from, "from", "", "first day")
	f.StringVar(&c.to, "to", "", "last day")
}

func (c *bizdaysCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, err := dateFlag("from", c.from)
	if err != nil {
		return usageError("%v", err)
	}
	to, err := dateFlag("to", c.to)
	if err != nil {
		return usageError("%v", err)
	}
	cal, err := c.calendar()
	if err != nil {
		return failure(err)
	}

	if c.json {
		return printJSON(struct {
			From         date.Date `json:"from"`
			To           date.Date `json:"to"`
			BusinessDays int       `json:"businessDays"`
		}{from, to, cal.CountBusinessDays(from, to)})
	}
	printMarkdown(renderer.BusinessDaysMarkdown(cal, date.Range{From: from, To: to}))
	return subcommands.ExitSuccess
}

type addbizdaysCmd struct {
	calendarFlags
	json bool
	from string
	n    int
}

func (*addbizdaysCmd) Name() string     { return "addbizdays" }
func (*addbizdaysCmd) Synopsis() string { return "move a date by a number of business days" }
func (*addbizdaysCmd) Usage() string {
	return `tvm addbizdays -from <date> -n <days>

  Prints the n-th business day after -from, or before it if n is negative.
  With -n 0 the date is printed unchanged, business day or not.
`
}

func (c *addbizdaysCmd) SetFlags(f *flag.FlagSet) {
	c.calendarFlags.SetFlags(f)
	f.BoolVar(&c.json, "json", false, "print the result as JSON")
	f.StringVar(&c.from, "from", date.Today().String(), "starting day")
	f.IntVar(&c.n, "n", 1, "number of business days")
}

func (c *addbizdaysCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, err := dateFlag("from", c.from)
	if err != nil {
		return usageError("%v", err)
	}
	cal, err := c.calendar()
	if err != nil {
		return failure(err)
	}
	d := cal.AddBusinessDays(from, c.n)
	if c.json {
		return printJSON(struct {
			Date date.Date `json:"date"`
		}{d})
	}
	printMarkdown(renderer.ValueMarkdown("Date", fmt.Sprintf("%s (%s)", d, d.Weekday()), [][]string{
		{"From", fmt.Sprintf("%s (%s)", from, from.Weekday())},
		{"Business days", strconv.Itoa(c.n)},
	}))
	return subcommands.ExitSuccess
}

type adjustCmd struct {
	calendarFlags
	json bool
	day  string
	roll string
}

func (*adjustCmd) Name() string     { return "adjust" }
func (*adjustCmd) Synopsis() string { return "roll a date onto a business day" }
func (*adjustCmd) Usage() string {
	return `tvm adjust -date <date> [-roll following]

  Rolls a weekend day or holiday onto a business day: following,
  modified_following, preceding, modified_preceding or unadjusted.
`
}

func (c *adjustCmd) SetFlags(f *flag.FlagSet) {
	c.calendarFlags.SetFlags(f)
	f.BoolVar(&c.json, "json", false, "print the result as JSON")
	f.StringVar(&c.day, "date", date.Today().String(), "date to adjust")
	f.StringVar(&c.roll, "roll", "following", "business day convention")
}

func (c *adjustCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := dateFlag("date", c.day)
	if err != nil {
		return usageError("%v", err)
	}
	roll, err := date.ParseRoll(c.roll)
	if err != nil {
		return usageError("%v", err)
	}
	cal, err := c.calendar()
	if err != nil {
		return failure(err)
	}
	adjusted := cal.Adjust(d, roll)
	if c.json {
		return printJSON(struct {
			Date date.Date `json:"date"`
		}{adjusted})
	}
	printMarkdown(renderer.ValueMarkdown("Adjusted Date", fmt.Sprintf("%s (%s)", adjusted, adjusted.Weekday()), [][]string{
		{"Date", fmt.Sprintf("%s (%s)", d, d.Weekday())},
		{"Convention", roll.String()},
	}))
	return subcommands.ExitSuccess
}

type yearfracCmd struct {
	json     bool
	from, to string
	dayCount string
}

func (*yearfracCmd) Name() string     { return "yearfrac" }
func (*yearfracCmd) Synopsis() string { return "compute the year fraction between two dates" }
func (*yearfracCmd) Usage() string {
	return `tvm yearfrac -from <date> -to <date> [-daycount act/365]

  Prints the length of the period as a fraction of a year, in lowest terms,
  under a day count convention: act/360, act/365, act/act, 30/360 or 30e/360.
`
}

func (c *yearfracCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the result as JSON")
	f.StringVar(&c.from, "from", "", "start date")
	f.StringVar(&c.to, "to", "", "end date")
	f.StringVar(&c.dayCount, "daycount", cfg.DayCount, "day count convention")
}

func (c *yearfracCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	num, den := convention.YearFraction(from, to)
	fraction, err := tvm.NewFromInt(int64(num)).Div(tvm.NewFromInt(int64(den)))
	if err != nil {
		return failure(err)
	}
	if c.json {
		return printJSON(struct {
			Numerator   int         `json:"numerator"`
			Denominator int         `json:"denominator"`
			Fraction    tvm.Decimal `json:"fraction"`
		}{num, den, fraction})
	}
	printMarkdown(renderer.ValueMarkdown("Year Fraction", fmt.Sprintf("%d/%d", num, den), [][]string{
		{"Decimal", fraction.StringFixed(10, tvm.HalfUp)},
		{"Convention", convention.String()},
		{"Period", fmt.Sprintf("%s to %s", from, to)},
	}))
	return subcommands.ExitSuccess
}
