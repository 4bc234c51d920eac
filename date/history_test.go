package date

import "testing"

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 07, 01), "25 Jul 1"
	d2, v2 := New(2024, 07, 01), "24 Jul 1"

	// Test is about appending two values in reverse order and checking that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if day, v := h.First(); day != d2 || v != v2 {
		t.Errorf("First() = %v, %v want %v, %v", day, v, d2, v2)
	}
	if day, v := h.Latest(); day != d1 || v != v1 {
		t.Errorf("Latest() = %v, %v want %v, %v", day, v, d1, v1)
	}

	h.Append(d1, "replaced")
	if got, _ := h.Get(d1); got != "replaced" || h.Len() != 2 {
		t.Errorf("Append() on an existing day = %q (len %d) want %q (len 2)", got, h.Len(), "replaced")
	}
}

func TestMerge(t *testing.T) {
	h := new(History[int])
	day := New(2025, 1, 1)
	sum := func(a, b int) int { return a + b }
	h.Merge(day, 2, sum).Merge(day, 3, sum).Merge(day.Add(1), 1, sum)

	if got, _ := h.Get(day); got != 5 {
		t.Errorf("Merge() = %d want 5", got)
	}
	var days []Date
	for d := range h.Values() {
		days = append(days, d)
	}
	if len(days) != 2 || days[0] != day || days[1] != day.Add(1) {
		t.Errorf("Values() days = %v want [%v %v]", days, day, day.Add(1))
	}
}
