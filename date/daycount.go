package date

import (
	"fmt"
	"strings"
	"time"
)

// DayCount is a day count convention: how the length of an accrual period is
// turned into a fraction of a year.
type DayCount int

const (
	// Actual360 counts actual days over a 360 days year (money market).
	Actual360 DayCount = iota
	// Actual365 counts actual days over a 365 days year, leap or not (Actual/365 Fixed).
	Actual365
	// ActualActual splits the period by calendar year, each part over 365 or 366 (Actual/Actual ISDA).
	ActualActual
	// Thirty360 is the 30/360 U.S. bond basis.
	Thirty360
	// Thirty360E is the 30E/360 Eurobond basis.
	Thirty360E
)

func (c DayCount) String() string {
	switch c {
	case Actual360:
		return "act/360"
	case Actual365:
		return "act/365"
	case ActualActual:
		return "act/act"
	case Thirty360:
		return "30/360"
	case Thirty360E:
		return "30e/360"
	default:
		return "unknown"
	}
}

// ParseDayCount parses a convention name like "act/360" or "30/360".
func ParseDayCount(s string) (DayCount, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "actual", "act")) {
	case "act/360":
		return Actual360, nil
	case "act/365", "act/365f":
		return Actual365, nil
	case "act/act", "act/act isda":
		return ActualActual, nil
	case "30/360", "30/360 us":
		return Thirty360, nil
	case "30e/360":
		return Thirty360E, nil
	default:
		return Actual365, fmt.Errorf("unknown day count convention %q", s)
	}
}

// YearFraction returns the length of the period [from, to) as the fraction
// num/den of a year, in lowest terms (den > 0). It is negative when to is
// before from.
func (c DayCount) YearFraction(from, to Date) (num, den int) {
	switch c {
	case Actual360:
		return reduce(from.DaysUntil(to), 360)
	case Actual365:
		return reduce(from.DaysUntil(to), 365)
	case Thirty360, Thirty360E:
		return reduce(c.days360(from, to), 360)
	case ActualActual:
		if to.Before(from) {
			num, den = c.YearFraction(to, from)
			return -num, den
		}
		num, den = 0, 1
		for y := from.Year(); y <= to.Year(); y++ {
			start := New(y, time.January, 1)
			end := New(y+1, time.January, 1)
			if start.Before(from) {
				start = from
			}
			if end.After(to) {
				end = to
			}
			yearDays := 365
			if start.IsLeapYear() {
				yearDays = 366
			}
			num, den = reduce(num*yearDays+start.DaysUntil(end)*den, den*yearDays)
		}
		return num, den
	default:
		panic(fmt.Sprintf("unknown day count convention %d", c))
	}
}

// days360 counts days between from and to with 30 days months.
func (c DayCount) days360(from, to Date) int {
	d1, d2 := from.Day(), to.Day()
	if d1 == 31 {
		d1 = 30
	}
	switch {
	case c == Thirty360E && d2 == 31:
		d2 = 30
	case c == Thirty360 && d2 == 31 && d1 >= 30:
		d2 = 30
	}
	return (to.Year()-from.Year())*360 + int(to.Month()-from.Month())*30 + (d2 - d1)
}

// GCD returns the greatest common divisor of |a| and |b|, GCD(0, 0) is 0.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// reduce returns num/den in lowest terms with a positive denominator.
func reduce(num, den int) (int, int) {
	if den < 0 {
		num, den = -num, -den
	}
	if g := GCD(num, den); g > 1 {
		num, den = num/g, den/g
	}
	return num, den
}
