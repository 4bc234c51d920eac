package tvm

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
)

// Currency carries the minor unit precision of an ISO 4217 currency, the
// number of fractional digits a payable amount has.
type Currency struct {
	code     string
	fraction int
}

// LookupCurrency returns the currency of an ISO 4217 code such as "EUR" or "JPY".
func LookupCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	cur := money.GetCurrency(code)
	if cur == nil {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return Currency{code: cur.Code, fraction: cur.Fraction}, nil
}

// Code returns the ISO 4217 code.
func (c Currency) Code() string { return c.code }

// Places returns the number of fractional digits of the minor unit: 2 for EUR, 0 for JPY.
func (c Currency) Places() int32 { return int32(c.fraction) }

// Round rounds d to a payable amount in c.
func (c Currency) Round(d Decimal, mode RoundingMode) Decimal {
	return d.RoundTo(c.Places(), mode)
}

// Format rounds d with mode and formats it with the currency symbol and
// separators, e.g. "€1,234.57". It is meant for display only.
func (c Currency) Format(d Decimal, mode RoundingMode) string {
	cur := money.GetCurrency(c.code)
	if cur == nil {
		return d.StringFixed(c.Places(), mode)
	}
	minor := c.Round(d, mode).value.Shift(c.Places())
	return cur.Formatter().Format(minor.IntPart())
}

func (c Currency) String() string { return c.code }
