package date

import (
	"iter"
	"slices"
)

// History is a series of values at distinct dates, kept in date order.
//
// The zero value is an empty history ready to use.
type History[T any] struct {
	days   []Date
	values []T
}

// search returns the index of on, or where to insert it.
func (h *History[T]) search(on Date) (int, bool) {
	return slices.BinarySearchFunc(h.days, on, func(d, on Date) int { return d.Compare(on) })
}

// First returns the earliest date and its value, zeros if h is empty.
func (h *History[T]) First() (Date, T) {
	if len(h.days) == 0 {
		var zero T
		return Date{}, zero
	}
	return h.days[0], h.values[0]
}

// Latest returns the latest date and its value, zeros if h is empty.
func (h *History[T]) Latest() (Date, T) {
	if len(h.days) == 0 {
		var zero T
		return Date{}, zero
	}
	last := len(h.days) - 1
	return h.days[last], h.values[last]
}

// Len returns the number of dates.
func (h *History[T]) Len() int { return len(h.days) }

// Append sets the value at a date, replacing any previous one.
func (h *History[T]) Append(on Date, v T) *History[T] {
	i, found := h.search(on)
	if found {
		h.values[i] = v
		return h
	}
	h.days = slices.Insert(h.days, i, on)
	h.values = slices.Insert(h.values, i, v)
	return h
}

// Merge is Append, except that a value already at that date is combined
// with v instead of replaced.
func (h *History[T]) Merge(on Date, v T, combine func(old, new T) T) *History[T] {
	if i, found := h.search(on); found {
		h.values[i] = combine(h.values[i], v)
		return h
	}
	return h.Append(on, v)
}

// Values iterates over the dates and values in date order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Get returns the value at day, and whether there is one.
func (h *History[T]) Get(day Date) (T, bool) {
	if i, found := h.search(day); found {
		return h.values[i], true
	}
	var zero T
	return zero, false
}
