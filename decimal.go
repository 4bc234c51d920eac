package tvm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// WorkingPrecision is the number of digits kept by every inexact operation
// (division, powers) until an explicit rounding step: that many fractional
// digits for results of magnitude 1 or more, that many significant digits
// below.
//
// It is a constant: shopspring's package-level DivisionPrecision is never
// read nor written, every division passes its precision explicitly.
const WorkingPrecision = 40

// maxMagnitude bounds the decimal exponent of inexact results. Beyond it
// divisions and powers fail instead of allocating unbounded digits.
const maxMagnitude = 100_000

// Decimal is an immutable, arbitrary-precision, signed decimal value.
//
// The zero value is 0. Add, Sub and Mul are exact. Div and Pow keep
// WorkingPrecision digits, see there. Nothing is rounded to a currency
// precision unless RoundTo is called.
type Decimal struct {
	value decimal.Decimal
}

var (
	// Zero is the decimal 0.
	Zero = Decimal{}
	// One is the decimal 1.
	One = Decimal{decimal.NewFromInt(1)}
)

// New is a convenient factory for Decimal from any supported primitive.
//
// Strings are parsed with Parse, floats must be finite.
func New[T int | int32 | int64 | uint | uint32 | uint64 | float32 | float64 | string | Decimal](value T) (Decimal, error) {
	switch v := any(value).(type) {
	case Decimal:
		return v, nil
	case string:
		return Parse(v)
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return Decimal{}, fmt.Errorf("%w: %v", ErrInvalidNumericInput, v)
		}
		return Decimal{decimal.NewFromFloat32(v)}, nil
	case float64:
		return NewFromFloat(v)
	case int:
		return NewFromInt(int64(v)), nil
	case int32:
		return NewFromInt(int64(v)), nil
	case int64:
		return NewFromInt(v), nil
	case uint:
		return Decimal{decimal.NewFromUint64(uint64(v))}, nil
	case uint32:
		return Decimal{decimal.NewFromUint64(uint64(v))}, nil
	case uint64:
		return Decimal{decimal.NewFromUint64(v)}, nil
	default:
		panic("unsupported type")
	}
}

// NewFromInt returns the decimal value of i.
func NewFromInt(i int64) Decimal { return Decimal{decimal.NewFromInt(i)} }

// NewFromFloat returns the shortest decimal representation of f.
//
// NaN and infinities are rejected with ErrInvalidNumericInput.
func NewFromFloat(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, fmt.Errorf("%w: %v", ErrInvalidNumericInput, f)
	}
	return Decimal{decimal.NewFromFloat(f)}, nil
}

// Parse parses a base-10 number such as "123.45", "-0.5" or "1.5e-3".
func Parse(s string) (Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Decimal{}, fmt.Errorf("%w: %q", ErrInvalidNumericInput, s)
	}
	return Decimal{v}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// magnitude returns the number of digits of v before the decimal point, or
// minus the number of zeros right after it: 3 for 123.4, 0 for 0.5, -2 for
// 0.005. v must not be zero.
func magnitude(v decimal.Decimal) int64 {
	return int64(v.Exponent()) + int64(v.NumDigits())
}

// places returns the fractional digits that keep WorkingPrecision digits of
// a value of magnitude m.
func places(m int64) int32 {
	return int32(WorkingPrecision + max(0, -m))
}

// trim bounds the scale of an inexact result to WorkingPrecision digits.
func trim(v decimal.Decimal) decimal.Decimal {
	if v.IsZero() {
		return v
	}
	if p := places(magnitude(v)); v.Exponent() < -p {
		return v.Round(p)
	}
	return v
}

// outOfRange reports an inexact result whose magnitude cannot be represented.
func outOfRange(op string, m float64) error {
	return fmt.Errorf("%w: %s is out of range, about 1e%.0f", ErrInvalidNumericInput, op, m)
}

func (d Decimal) Add(x Decimal) Decimal { return Decimal{d.value.Add(x.value)} }
func (d Decimal) Sub(x Decimal) Decimal { return Decimal{d.value.Sub(x.value)} }
func (d Decimal) Mul(x Decimal) Decimal { return Decimal{d.value.Mul(x.value)} }
func (d Decimal) Neg() Decimal          { return Decimal{d.value.Neg()} }
func (d Decimal) Abs() Decimal          { return Decimal{d.value.Abs()} }

func (d Decimal) Cmp(x Decimal) int                 { return d.value.Cmp(x.value) }
func (d Decimal) Equal(x Decimal) bool              { return d.value.Equal(x.value) }
func (d Decimal) LessThan(x Decimal) bool           { return d.value.LessThan(x.value) }
func (d Decimal) LessThanOrEqual(x Decimal) bool    { return d.value.LessThanOrEqual(x.value) }
func (d Decimal) GreaterThan(x Decimal) bool        { return d.value.GreaterThan(x.value) }
func (d Decimal) GreaterThanOrEqual(x Decimal) bool { return d.value.GreaterThanOrEqual(x.value) }
func (d Decimal) Sign() int                         { return d.value.Sign() }
func (d Decimal) IsZero() bool                      { return d.value.IsZero() }
func (d Decimal) IsNegative() bool                  { return d.value.IsNegative() }
func (d Decimal) IsPositive() bool                  { return d.value.IsPositive() }

// Div returns d/x with WorkingPrecision digits.
func (d Decimal) Div(x Decimal) (Decimal, error) {
	if x.value.IsZero() {
		return Decimal{}, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, d)
	}
	if d.value.IsZero() {
		return Zero, nil
	}
	// The quotient magnitude is m or m+1.
	m := magnitude(d.value) - magnitude(x.value)
	if m > maxMagnitude || m < -maxMagnitude {
		return Decimal{}, outOfRange(fmt.Sprintf("%s / %s", d, x), float64(m))
	}
	return Decimal{trim(d.value.DivRound(x.value, places(m)))}, nil
}

// log10 returns the decimal logarithm of |d|, which must not be zero.
//
// It is exact enough to size results, even for magnitudes beyond float64.
func (d Decimal) log10() float64 {
	m := magnitude(d.value)
	mantissa := d.value.Abs().Shift(int32(-m)).InexactFloat64() // in [0.1, 1)
	return float64(m) + math.Log10(mantissa)
}

// PowInt returns d raised to the integer power n.
//
// Intermediate products are kept at WorkingPrecision. Zero raised to a
// negative power fails with ErrDivisionByZero, and results beyond 1e±100000
// with ErrInvalidNumericInput.
func (d Decimal) PowInt(n int64) (Decimal, error) {
	switch {
	case n == 0:
		return One, nil
	case n == math.MinInt64:
		return Decimal{}, fmt.Errorf("%w: exponent %d is out of range", ErrInvalidNumericInput, n)
	case d.IsZero() && n < 0:
		return Decimal{}, fmt.Errorf("%w: 0^%d", ErrDivisionByZero, n)
	case d.IsZero():
		return Zero, nil
	}
	if m := float64(n) * d.log10(); math.Abs(m) > maxMagnitude {
		return Decimal{}, outOfRange(fmt.Sprintf("%s^%d", d, n), m)
	}
	if n < 0 {
		p, err := d.PowInt(-n)
		if err != nil {
			return Decimal{}, err
		}
		return One.Div(p)
	}
	result := decimal.NewFromInt(1)
	base := d.value
	for n > 0 {
		if n&1 == 1 {
			result = trim(result.Mul(base))
		}
		n >>= 1
		if n > 0 {
			base = trim(base.Mul(base))
		}
	}
	return Decimal{result}, nil
}

// Pow returns d raised to the power exp.
//
// Integer exponents use repeated squaring and must fit in an int64.
// Fractional exponents are only defined for a positive base, otherwise
// ErrInvalidNumericInput is returned.
func (d Decimal) Pow(exp Decimal) (Decimal, error) {
	if exp.value.Equal(exp.value.Truncate(0)) {
		if !exp.value.BigInt().IsInt64() {
			return Decimal{}, fmt.Errorf("%w: exponent %s is out of range", ErrInvalidNumericInput, exp)
		}
		return d.PowInt(exp.value.IntPart())
	}
	switch d.Sign() {
	case 0:
		if exp.IsNegative() {
			return Decimal{}, fmt.Errorf("%w: 0^%s", ErrDivisionByZero, exp)
		}
		return Zero, nil
	case -1:
		return Decimal{}, fmt.Errorf("%w: fractional power %s of negative base %s", ErrInvalidNumericInput, exp, d)
	}
	m := exp.Float64() * d.log10()
	if math.IsNaN(m) || math.Abs(m) > maxMagnitude {
		return Decimal{}, outOfRange(fmt.Sprintf("%s^%s", d, exp), m)
	}
	v, err := d.value.PowWithPrecision(exp.value, places(int64(math.Floor(m))))
	if err != nil {
		return Decimal{}, fmt.Errorf("%w: %s^%s: %v", ErrInvalidNumericInput, d, exp, err)
	}
	return Decimal{trim(v)}, nil
}

// RoundTo returns d rounded to places fractional digits using mode.
//
// Negative places round to the left of the decimal point (-2 rounds to hundreds).
func (d Decimal) RoundTo(places int32, mode RoundingMode) Decimal {
	v := d.value
	switch mode {
	case HalfUp:
		return Decimal{v.Round(places)}
	case HalfDown:
		up, down := v.RoundUp(places), v.RoundDown(places)
		if v.Sub(down).Abs().GreaterThan(up.Sub(v).Abs()) {
			return Decimal{up}
		}
		return Decimal{down}
	case HalfEven:
		return Decimal{v.RoundBank(places)}
	case Up:
		return Decimal{v.RoundUp(places)}
	case Down:
		return Decimal{v.RoundDown(places)}
	case Floor:
		return Decimal{v.RoundFloor(places)}
	case Ceiling:
		return Decimal{v.RoundCeil(places)}
	default:
		panic(fmt.Sprintf("unknown rounding mode %d", mode))
	}
}

// String returns the canonical representation, without trailing zeros.
func (d Decimal) String() string { return d.value.String() }

// StringFixed returns d rounded with mode and formatted with exactly places
// fractional digits, e.g. for JSON or SQL numeric(p, places) columns.
func (d Decimal) StringFixed(places int32, mode RoundingMode) string {
	return d.RoundTo(places, mode).value.StringFixed(places)
}

// Float64 returns the nearest float64. It is meant for display only.
func (d Decimal) Float64() float64 { return d.value.InexactFloat64() }

// MarshalJSON encodes d as a quoted canonical string, so that no JSON
// decoder ever goes through a float.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.value.String())
}

// UnmarshalJSON accepts both quoted strings and bare JSON numbers.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	v, err := Parse(strings.Trim(s, `"`))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Value implements driver.Valuer for numeric columns.
func (d Decimal) Value() (driver.Value, error) { return d.value.String(), nil }

// Scan implements sql.Scanner for numeric columns.
func (d *Decimal) Scan(src any) error {
	if err := d.value.Scan(src); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidNumericInput, err)
	}
	return nil
}

// check that a Decimal pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Decimal)(nil)
var _ json.Unmarshaler = (*Decimal)(nil)
