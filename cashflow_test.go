package tvm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/etnz/tvm/date"
)

func flows(amounts ...string) CashFlow {
	c := make(CashFlow, len(amounts))
	for i, a := range amounts {
		c[i] = dec(a)
	}
	return c
}

func TestNPV(t *testing.T) {
	c := flows("-1000", "300", "400", "500")
	got, err := NPV(c, dec("0.1"))
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, "NPV at 10%", got, "-21.0368144252441773102930127723516", "1e-25")

	zero, err := NPV(c, Zero)
	if err != nil || !zero.Equal(dec("200")) {
		t.Errorf("NPV at 0 = %s, %v, want 200", zero, err)
	}
	if _, err := NPV(c, dec("-1")); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("NPV at -1 error = %v, want ErrDivisionByZero", err)
	}
}

func TestIRR(t *testing.T) {
	c := flows("-1000", "300", "400", "500")
	rate, err := IRR(c)
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, "IRR", rate, "0.0889633946933499353", "1e-9")
	npv, err := NPV(c, rate)
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, "NPV at IRR", npv, "0", "1e-6")
}

func TestIRRFromAnyGuess(t *testing.T) {
	c := flows("-100", "-50", "80", "80", "80")
	for _, guess := range []string{"-0.5", "0", "0.1", "0.9"} {
		s := NewSolver()
		s.Guess = dec(guess)
		rate, err := s.IRR(c)
		if err != nil {
			t.Errorf("IRR from %s: %v", guess, err)
			continue
		}
		npv, _ := NPV(c, rate)
		assertClose(t, "NPV at IRR from "+guess, npv, "0", "1e-6")
	}
}

func TestIRRErrors(t *testing.T) {
	tests := []struct {
		name   string
		solver func(Solver) Solver
		flows  CashFlow
		want   error
	}{
		{
			name:  "no sign change",
			flows: flows("1000", "2000"),
			want:  ErrNoSignChange,
		},
		{
			name:  "all outflows",
			flows: flows("-1", "-2", "0"),
			want:  ErrNoSignChange,
		},
		{
			name:  "empty",
			flows: nil,
			want:  ErrNoSignChange,
		},
		{
			name:   "exhausted",
			solver: func(s Solver) Solver { s.MaxIterations = 1; return s },
			flows:  flows("-1000", "300", "400", "500"),
			want:   ErrIrrNotConverged,
		},
		{
			name:   "no iteration",
			solver: func(s Solver) Solver { s.MaxIterations = 0; return s },
			flows:  flows("-1000", "300", "400", "500"),
			want:   ErrIrrNotConverged,
		},
		{
			name:   "flat npv curve",
			solver: func(s Solver) Solver { s.Guess = dec("1e30"); return s },
			flows:  flows("-1", "1"),
			want:   ErrIrrNotConverged,
		},
		{
			name:   "no tolerance",
			solver: func(s Solver) Solver { s.Tolerance = Zero; return s },
			flows:  flows("-1", "1"),
			want:   ErrInvalidNumericInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSolver()
			if tt.solver != nil {
				s = tt.solver(s)
			}
			rate, err := s.IRR(tt.flows)
			if !errors.Is(err, tt.want) {
				t.Errorf("IRR() = %s, %v, want error %v", rate, err, tt.want)
			}
		})
	}
}

func TestIRRUnitFree(t *testing.T) {
	// The rate of a cash flow does not depend on its unit.
	for _, c := range []CashFlow{
		flows("-1", "2"),
		flows("-1e-20", "2e-20"),
		flows("-1e-30", "1e-30", "1e-30"),
		flows("-1e20", "2e20"),
	} {
		s := NewSolver()
		rate, err := s.IRR(c)
		if err != nil {
			t.Errorf("IRR(%s) error: %v", c, err)
			continue
		}
		want := "1"
		if len(c) == 3 {
			want = "0.6180339887498948482" // golden ratio - 1
		}
		assertClose(t, fmt.Sprint("IRR", c), rate, want, "1e-9")
	}

	var h DatedCashFlow
	h.Append(date.New(2023, 1, 1), dec("-1e-20"))
	h.Append(date.New(2024, 1, 1), dec("1.1e-20"))
	rate, err := XIRR(&h)
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, "XIRR of tiny flows", rate, "0.1", "1e-9")
}

func TestXIRR(t *testing.T) {
	var h DatedCashFlow
	h.Append(date.New(2024, 1, 1), dec("-1000"))
	h.Append(date.New(2025, 1, 1), dec("1100")) // 366 days later
	rate, err := XIRR(&h)
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, "XIRR", rate, "0.0997135859341", "1e-9")

	npv, err := XNPV(&h, rate)
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, "XNPV at XIRR", npv, "0", "1e-6")
}

func TestXNPVMatchesNPVOnYearlyFlows(t *testing.T) {
	// With 365 days years, yearly dated flows discount like periodic ones.
	var h DatedCashFlow
	start := date.New(2021, 1, 1)
	c := flows("-1000", "300", "400", "500")
	for i, a := range c {
		h.Append(start.Add(365*i), a)
	}
	want, _ := NPV(c, dec("0.1"))
	got, err := XNPV(&h, dec("0.1"))
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, "XNPV", got, want.String(), "1e-25")
}

func TestXIRRNoSignChange(t *testing.T) {
	var h DatedCashFlow
	h.Append(date.New(2024, 1, 1), dec("10"))
	h.Append(date.New(2024, 6, 1), dec("20"))
	if _, err := XIRR(&h); !errors.Is(err, ErrNoSignChange) {
		t.Errorf("XIRR error = %v, want ErrNoSignChange", err)
	}
}
