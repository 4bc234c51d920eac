package renderer

import (
	"github.com/etnz/tvm"
)

// Amounts formats amounts for display.
//
// Without a Currency amounts are printed with Places fractional digits, with
// one they get its symbol and minor unit digits.
type Amounts struct {
	Currency *tvm.Currency
	Places   int32
	Mode     tvm.RoundingMode
}

// Plain returns an Amounts printing places fractional digits.
func Plain(places int32, mode tvm.RoundingMode) Amounts {
	return Amounts{Places: places, Mode: mode}
}

// In returns an Amounts printing amounts in cur.
func In(cur tvm.Currency, mode tvm.RoundingMode) Amounts {
	return Amounts{Currency: &cur, Places: cur.Places(), Mode: mode}
}

// Format returns the display string of d.
func (a Amounts) Format(d tvm.Decimal) string {
	if a.Currency != nil {
		return a.Currency.Format(d, a.Mode)
	}
	return d.StringFixed(a.Places, a.Mode)
}

var hundred = tvm.NewFromInt(100)

// Percent formats a rate as a percentage with places fractional digits: 0.05116 is "5.12%".
func Percent(rate tvm.Decimal, places int32) string {
	return rate.Mul(hundred).StringFixed(places, tvm.HalfUp) + "%"
}
