package tvm

import (
	"fmt"
	"strings"

	"github.com/etnz/tvm/date"
)

// PerPeriodRate converts a nominal annual rate into the rate of one of
// periodsPerYear periods: PerPeriodRate(0.06, 12) is 0.005.
//
// Every formula of this package takes per-period rates. This is the one
// place where an annual rate becomes a periodic one.
func PerPeriodRate(annualRate Decimal, periodsPerYear int) (Decimal, error) {
	if periodsPerYear <= 0 {
		return Decimal{}, fmt.Errorf("%w: %d periods per year", ErrNonConvergentPeriods, periodsPerYear)
	}
	return annualRate.Div(NewFromInt(int64(periodsPerYear)))
}

// ParseRate parses a rate written either as a fraction ("0.05") or as a
// percentage ("5%"). It returns the fraction.
func ParseRate(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	if p, ok := strings.CutSuffix(s, "%"); ok {
		d, err := Parse(p)
		if err != nil {
			return Decimal{}, err
		}
		return d.Mul(percent), nil
	}
	return Parse(s)
}

var percent = MustParse("0.01")

// RateSpec is a nominal annual rate together with its compounding frequency.
//
// The frequency disambiguates nominal from effective rates: 5% compounded
// monthly is a 0.4167% monthly rate and a 5.116% effective annual rate.
type RateSpec struct {
	Rate           Decimal // nominal annual rate, as a fraction
	PeriodsPerYear int     // compounding periods per year
}

// Compounded returns the RateSpec of a nominal annual rate compounded every period.
func Compounded(rate Decimal, every date.Period) RateSpec {
	return RateSpec{Rate: rate, PeriodsPerYear: every.PerYear()}
}

// PerPeriod returns the rate of a single compounding period.
func (r RateSpec) PerPeriod() (Decimal, error) { return PerPeriodRate(r.Rate, r.PeriodsPerYear) }

// Effective returns the effective annual rate.
func (r RateSpec) Effective() (Decimal, error) {
	return EffectiveAnnualRate(r.Rate, r.PeriodsPerYear)
}

func (r RateSpec) String() string {
	return fmt.Sprintf("%s compounded %d times a year", r.Rate, r.PeriodsPerYear)
}
