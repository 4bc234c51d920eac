package tvm

import (
	"errors"
	"testing"
)

func TestLookupCurrency(t *testing.T) {
	tests := []struct {
		code   string
		places int32
	}{
		{"EUR", 2},
		{"usd", 2},
		{"JPY", 0},
		{"KWD", 3},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c, err := LookupCurrency(tt.code)
			if err != nil {
				t.Fatal(err)
			}
			if c.Places() != tt.places {
				t.Errorf("Places() = %d, want %d", c.Places(), tt.places)
			}
		})
	}
	if _, err := LookupCurrency("EURO"); !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("LookupCurrency(EURO) error = %v, want ErrUnknownCurrency", err)
	}
}

func TestCurrencyFormat(t *testing.T) {
	usd, err := LookupCurrency("USD")
	if err != nil {
		t.Fatal(err)
	}
	if got := usd.Format(dec("1234.565"), HalfEven); got != "$1,234.56" {
		t.Errorf("Format = %q, want $1,234.56", got)
	}
	if got := usd.Round(dec("1234.565"), HalfUp); !got.Equal(dec("1234.57")) {
		t.Errorf("Round = %s, want 1234.57", got)
	}
}
