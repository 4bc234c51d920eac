package tvm

import "testing"

// dec parses a decimal literal for tests.
func dec(s string) Decimal { return MustParse(s) }

// assertClose fails if got is farther than tolerance from want.
func assertClose(t *testing.T, name string, got Decimal, want, tolerance string) {
	t.Helper()
	if got.Sub(dec(want)).Abs().GreaterThan(dec(tolerance)) {
		t.Errorf("%s = %s, want %s ± %s", name, got, want, tolerance)
	}
}
