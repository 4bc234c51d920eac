package cmd

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/etnz/tvm"
	"github.com/etnz/tvm/date"
	"github.com/etnz/tvm/renderer"
)

// outputFlags are the flags shared by every computing command.
type outputFlags struct {
	json     bool
	places   int
	rounding string
	currency string
}

func (o *outputFlags) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&o.json, "json", false, "print the result as JSON, at full precision")
	f.IntVar(&o.places, "places", cfg.Precision, "fractional digits of displayed amounts")
	f.StringVar(&o.rounding, "rounding", cfg.Rounding, "rounding mode: half_up, half_down, half_even, up, down, floor or ceiling")
	f.StringVar(&o.currency, "currency", cfg.Currency, "ISO 4217 code of the amounts, e.g. EUR; sets the fractional digits")
}

func (o *outputFlags) mode() (tvm.RoundingMode, error) {
	return tvm.ParseRoundingMode(o.rounding)
}

// amounts returns how amounts are displayed.
func (o *outputFlags) amounts() (renderer.Amounts, error) {
	mode, err := o.mode()
	if err != nil {
		return renderer.Amounts{}, err
	}
	if o.currency != "" {
		cur, err := tvm.LookupCurrency(o.currency)
		if err != nil {
			return renderer.Amounts{}, err
		}
		return renderer.In(cur, mode), nil
	}
	if o.places < 0 {
		return renderer.Amounts{}, fmt.Errorf("-places must not be negative, got %d", o.places)
	}
	return renderer.Plain(int32(o.places), mode), nil
}

// rateFlags read a nominal annual rate and the payment frequency.
type rateFlags struct {
	rate     string
	every    string
	periodic bool
}

func (r *rateFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.rate, "rate", "", "nominal annual rate, as a fraction (0.05) or a percentage (5%)")
	f.StringVar(&r.every, "every", "monthly", "payment frequency: daily, weekly, monthly, quarterly or yearly")
	f.BoolVar(&r.periodic, "periodic", false, "-rate is already a per period rate")
}

// period returns the payment frequency.
func (r *rateFlags) period() (date.Period, error) { return date.ParsePeriod(r.every) }

// perPeriod returns the rate of one payment period.
func (r *rateFlags) perPeriod() (tvm.Decimal, error) {
	if r.rate == "" {
		return tvm.Decimal{}, fmt.Errorf("-rate is required")
	}
	rate, err := tvm.ParseRate(r.rate)
	if err != nil {
		return tvm.Decimal{}, fmt.Errorf("invalid -rate: %w", err)
	}
	if r.periodic {
		return rate, nil
	}
	every, err := r.period()
	if err != nil {
		return tvm.Decimal{}, err
	}
	return tvm.Compounded(rate, every).PerPeriod()
}

// decimalFlag parses a required decimal flag value.
func decimalFlag(name, value string) (tvm.Decimal, error) {
	if value == "" {
		return tvm.Decimal{}, fmt.Errorf("-%s is required", name)
	}
	d, err := tvm.Parse(value)
	if err != nil {
		return tvm.Decimal{}, fmt.Errorf("invalid -%s: %w", name, err)
	}
	return d, nil
}

// rateFlag parses a required rate flag value, "5%" or "0.05".
func rateFlag(name, value string) (tvm.Decimal, error) {
	if value == "" {
		return tvm.Decimal{}, fmt.Errorf("-%s is required", name)
	}
	d, err := tvm.ParseRate(value)
	if err != nil {
		return tvm.Decimal{}, fmt.Errorf("invalid -%s: %w", name, err)
	}
	return d, nil
}

// dateFlag parses a required date flag value.
func dateFlag(name, value string) (date.Date, error) {
	if value == "" {
		return date.Date{}, fmt.Errorf("-%s is required", name)
	}
	d, err := date.Parse(value)
	if err != nil {
		return date.Date{}, fmt.Errorf("invalid -%s: %w", name, err)
	}
	return d, nil
}

// calendarFlags select the business day calendar.
type calendarFlags struct {
	holidays string
	weekend  string
}

func (c *calendarFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.holidays, "holidays", cfg.Holidays, "YAML or TOML holiday calendar file")
	f.StringVar(&c.weekend, "weekend", "", "comma separated weekend days, e.g. friday,saturday; overrides the file")
}

// calendar loads the calendar: the holiday file if any, a Saturday and
// Sunday weekend otherwise.
func (c *calendarFlags) calendar() (date.Calendar, error) {
	cal := date.NewCalendar()
	if c.holidays != "" {
		var err error
		cal, err = date.DecodeCalendar(c.holidays)
		if err != nil {
			return date.Calendar{}, err
		}
		logger.Debug().Str("file", c.holidays).Int("holidays", len(cal.Holidays())).Msg("calendar loaded")
	}
	if c.weekend == "" {
		return cal, nil
	}
	var weekend []time.Weekday
	for _, name := range strings.Split(c.weekend, ",") {
		wd, err := date.ParseWeekday(strings.TrimSpace(name))
		if err != nil {
			return date.Calendar{}, err
		}
		weekend = append(weekend, wd)
	}
	return date.NewCalendarWithWeekend(weekend, cal.Holidays()...)
}
