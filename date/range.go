package date

import "iter"

// Range represents a closed range of dates, both boundaries included.
type Range struct{ From, To Date }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }

// IsEmpty reports whether To is before From.
func (r Range) IsEmpty() bool { return r.To.Before(r.From) }

// Days returns the number of calendar days in the range, 0 if it is empty.
func (r Range) Days() int {
	if r.IsEmpty() {
		return 0
	}
	return r.From.DaysUntil(r.To) + 1
}

// All returns an iterator over every day of the range, in order.
func (r Range) All() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// String returns the range as "from..to".
func (r Range) String() string { return r.From.String() + ".." + r.To.String() }
