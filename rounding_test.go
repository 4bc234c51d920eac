package tvm

import "testing"

func TestParseRoundingMode(t *testing.T) {
	for _, mode := range RoundingModes {
		got, err := ParseRoundingMode(mode.String())
		if err != nil {
			t.Errorf("ParseRoundingMode(%q) unexpected error: %v", mode, err)
		}
		if got != mode {
			t.Errorf("ParseRoundingMode(%q) = %v", mode, got)
		}
	}
	aliases := map[string]RoundingMode{
		"HALF-EVEN": HalfEven,
		"bankers":   HalfEven,
		"truncate":  Down,
		"ceil":      Ceiling,
	}
	for in, want := range aliases {
		if got, err := ParseRoundingMode(in); err != nil || got != want {
			t.Errorf("ParseRoundingMode(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseRoundingMode("nearest"); err == nil {
		t.Error(`ParseRoundingMode("nearest") want error`)
	}
}
