package date

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

// Calendar tells business days apart from weekend days and holidays.
//
// A Calendar is immutable once built and safe for concurrent use: build one
// per query with its explicit holiday set, there is no global calendar.
//
// Counting and advancing walk the calendar day by day, they cost O(days
// spanned). That is fine for loan and accrual horizons of a few decades.
//
// The zero Calendar has neither weekend nor holidays: every day is a business day.
type Calendar struct {
	weekend  [7]bool // indexed by time.Weekday
	holidays map[Date]struct{}
}

// NewCalendar returns a Saturday/Sunday weekend calendar with the given holidays.
func NewCalendar(holidays ...Date) Calendar {
	c, _ := NewCalendarWithWeekend([]time.Weekday{time.Saturday, time.Sunday}, holidays...)
	return c
}

// NewCalendarWithWeekend returns a calendar with a custom weekend, e.g. Friday/Saturday.
//
// A weekend covering the whole week is rejected, since no date could ever be
// reached by AddBusinessDays.
func NewCalendarWithWeekend(weekend []time.Weekday, holidays ...Date) (Calendar, error) {
	var c Calendar
	for _, wd := range weekend {
		if wd < time.Sunday || wd > time.Saturday {
			return Calendar{}, fmt.Errorf("invalid weekday %d", wd)
		}
		c.weekend[wd] = true
	}
	if !slices.Contains(c.weekend[:], false) {
		return Calendar{}, fmt.Errorf("weekend %v leaves no business day", weekend)
	}
	c.holidays = make(map[Date]struct{}, len(holidays))
	for _, h := range holidays {
		c.holidays[h] = struct{}{}
	}
	return c, nil
}

// With returns a copy of c with additional holidays. c is left unchanged.
func (c Calendar) With(holidays ...Date) Calendar {
	n := Calendar{weekend: c.weekend, holidays: maps.Clone(c.holidays)}
	if n.holidays == nil {
		n.holidays = make(map[Date]struct{}, len(holidays))
	}
	for _, h := range holidays {
		n.holidays[h] = struct{}{}
	}
	return n
}

// Weekend returns the weekend days, Sunday first.
func (c Calendar) Weekend() []time.Weekday {
	var days []time.Weekday
	for wd, off := range c.weekend {
		if off {
			days = append(days, time.Weekday(wd))
		}
	}
	return days
}

// Holidays returns the holidays in chronological order.
func (c Calendar) Holidays() []Date {
	return slices.SortedFunc(maps.Keys(c.holidays), Date.Compare)
}

// IsWeekend reports whether d falls on a weekend day.
func (c Calendar) IsWeekend(d Date) bool { return c.weekend[d.Weekday()] }

// IsHoliday reports whether d is in the holiday set.
func (c Calendar) IsHoliday(d Date) bool {
	_, ok := c.holidays[d]
	return ok
}

// IsBusinessDay is false if d is a weekend day or a holiday.
func (c Calendar) IsBusinessDay(d Date) bool { return !c.IsWeekend(d) && !c.IsHoliday(d) }

// CountBusinessDays counts business days in the closed interval [start, end].
//
// It returns 0 when end is before start: the interval is empty, boundaries
// are never swapped and the count is never negative.
func (c Calendar) CountBusinessDays(start, end Date) int {
	count := 0
	for d := range (Range{From: start, To: end}).All() {
		if c.IsBusinessDay(d) {
			count++
		}
	}
	return count
}

// AddBusinessDays moves from start across n business days.
//
// For n > 0 it returns the n-th business day strictly after start, for n < 0
// the |n|-th business day strictly before it. For n == 0 it returns start
// unchanged, even if start is not itself a business day: use Adjust to roll
// a date onto a business day.
func (c Calendar) AddBusinessDays(start Date, n int) Date {
	step := 1
	if n < 0 {
		step, n = -1, -n
	}
	d := start
	for n > 0 {
		d = d.Add(step)
		if c.IsBusinessDay(d) {
			n--
		}
	}
	return d
}

// NextBusinessDay returns the first business day strictly after d.
func (c Calendar) NextBusinessDay(d Date) Date { return c.AddBusinessDays(d, 1) }

// PreviousBusinessDay returns the last business day strictly before d.
func (c Calendar) PreviousBusinessDay(d Date) Date { return c.AddBusinessDays(d, -1) }

// Adjust rolls d onto a business day following the roll convention.
// Business days are returned unchanged.
func (c Calendar) Adjust(d Date, roll Roll) Date {
	if roll == Unadjusted || c.IsBusinessDay(d) {
		return d
	}
	switch roll {
	case Following:
		return c.NextBusinessDay(d)
	case ModifiedFollowing:
		if n := c.NextBusinessDay(d); n.Month() == d.Month() {
			return n
		}
		return c.PreviousBusinessDay(d)
	case Preceding:
		return c.PreviousBusinessDay(d)
	case ModifiedPreceding:
		if p := c.PreviousBusinessDay(d); p.Month() == d.Month() {
			return p
		}
		return c.NextBusinessDay(d)
	default:
		panic(fmt.Sprintf("unknown roll convention %d", roll))
	}
}

// Roll is a business day convention: how a date falling on a non-business day is moved.
type Roll int

const (
	// Unadjusted keeps the date as is.
	Unadjusted Roll = iota
	// Following moves to the next business day.
	Following
	// ModifiedFollowing moves to the next business day unless it is in the next month, then to the previous one.
	ModifiedFollowing
	// Preceding moves to the previous business day.
	Preceding
	// ModifiedPreceding moves to the previous business day unless it is in the previous month, then to the next one.
	ModifiedPreceding
)

func (r Roll) String() string {
	switch r {
	case Unadjusted:
		return "unadjusted"
	case Following:
		return "following"
	case ModifiedFollowing:
		return "modified_following"
	case Preceding:
		return "preceding"
	case ModifiedPreceding:
		return "modified_preceding"
	default:
		return "unknown"
	}
}

// ParseRoll parses a roll convention name such as "following" or "modified-following".
func ParseRoll(s string) (Roll, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "-", "_")) {
	case "unadjusted", "none", "":
		return Unadjusted, nil
	case "following":
		return Following, nil
	case "modified_following":
		return ModifiedFollowing, nil
	case "preceding":
		return Preceding, nil
	case "modified_preceding":
		return ModifiedPreceding, nil
	default:
		return Unadjusted, fmt.Errorf("unknown roll convention %q", s)
	}
}
