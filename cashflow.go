package tvm

import (
	"fmt"
	"iter"

	"github.com/etnz/tvm/date"
)

// CashFlow is a series of amounts at regular periods 0, 1, ..., n.
// Negative amounts are outflows (investments), positive ones inflows.
type CashFlow []Decimal

// DatedCashFlow holds amounts at calendar dates. Time is measured in years
// of 365 days from the earliest date.
type DatedCashFlow = date.History[Decimal]

// largest returns the largest magnitude of amounts.
func largest(amounts iter.Seq[Decimal]) Decimal {
	var m Decimal
	for a := range amounts {
		if a.Abs().GreaterThan(m) {
			m = a.Abs()
		}
	}
	return m
}

// hasSignChange reports whether amounts contains both an inflow and an outflow.
func hasSignChange(amounts iter.Seq[Decimal]) bool {
	var in, out bool
	for a := range amounts {
		switch a.Sign() {
		case 1:
			in = true
		case -1:
			out = true
		}
		if in && out {
			return true
		}
	}
	return false
}

// amounts iterates over the cash flow amounts.
func (c CashFlow) amounts(yield func(Decimal) bool) {
	for _, a := range c {
		if !yield(a) {
			return
		}
	}
}

// NPV returns the net present value Σ flows[t] / (1+rate)^t.
//
// It fails with ErrDivisionByZero when rate is -1.
func NPV(flows CashFlow, rate Decimal) (Decimal, error) {
	npv, _, err := flows.npv(rate)
	return npv, err
}

// npv returns the net present value of c and its derivative with respect to rate.
func (c CashFlow) npv(rate Decimal) (npv, slope Decimal, err error) {
	base := One.Add(rate)
	if base.IsZero() {
		return Decimal{}, Decimal{}, fmt.Errorf("%w: discounting at rate %s", ErrDivisionByZero, rate)
	}
	f := One // (1+rate)^t
	for t, amount := range c {
		pv, err := amount.Div(f)
		if err != nil {
			return Decimal{}, Decimal{}, err
		}
		npv = npv.Add(pv)
		if t > 0 {
			// d/dr amount/(1+r)^t = -t × amount/(1+r)^(t+1)
			d, err := pv.Mul(NewFromInt(int64(t))).Div(base)
			if err != nil {
				return Decimal{}, Decimal{}, err
			}
			slope = slope.Sub(d)
		}
		f = Decimal{trim(f.Mul(base).value)}
	}
	return npv, slope, nil
}

// XNPV returns the net present value of dated cash flows, each amount being
// discounted by (1+rate)^(days/365) where days are counted from the first date.
func XNPV(flows *DatedCashFlow, rate Decimal) (Decimal, error) {
	npv, _, err := xnpv(flows, rate)
	return npv, err
}

var daysPerYear = NewFromInt(365)

func xnpv(flows *DatedCashFlow, rate Decimal) (npv, slope Decimal, err error) {
	base := One.Add(rate)
	if base.Sign() <= 0 {
		return Decimal{}, Decimal{}, fmt.Errorf("%w: discounting dated flows at rate %s", ErrDivisionByZero, rate)
	}
	first, _ := flows.First()
	for on, amount := range flows.Values() {
		t, err := NewFromInt(int64(first.DaysUntil(on))).Div(daysPerYear)
		if err != nil {
			return Decimal{}, Decimal{}, err
		}
		f, err := base.Pow(t)
		if err != nil {
			return Decimal{}, Decimal{}, err
		}
		pv, err := amount.Div(f)
		if err != nil {
			return Decimal{}, Decimal{}, err
		}
		npv = npv.Add(pv)
		d, err := pv.Mul(t).Div(base)
		if err != nil {
			return Decimal{}, Decimal{}, err
		}
		slope = slope.Sub(d)
	}
	return npv, slope, nil
}

// Solver finds internal rates of return with Newton-Raphson iterations.
//
// Tolerance bounds the step between two rates, and |npv| relative to the
// largest flow, so that the result does not depend on the unit of the flows.
// A Solver is a plain value, safe for concurrent use.
type Solver struct {
	Guess         Decimal // starting rate
	MaxIterations int     // hard bound on the work done
	Tolerance     Decimal // on |npv|/max|flow| and on the step between two rates
}

// NewSolver returns a Solver starting at 10%, with at most 100 iterations
// and a 1e-10 tolerance.
func NewSolver() Solver {
	return Solver{
		Guess:         MustParse("0.1"),
		MaxIterations: 100,
		Tolerance:     MustParse("1e-10"),
	}
}

// IRR returns the internal rate of return of flows with the default Solver.
func IRR(flows CashFlow) (Decimal, error) { return NewSolver().IRR(flows) }

// XIRR returns the internal rate of return of dated flows with the default Solver.
func XIRR(flows *DatedCashFlow) (Decimal, error) { return NewSolver().XIRR(flows) }

// IRR returns the rate at which the net present value of flows is zero.
//
// Flows without both an inflow and an outflow have no IRR and fail with
// ErrNoSignChange before any iteration. ErrIrrNotConverged is returned when
// the iterations are exhausted or the NPV curve is flat: a best guess is
// never returned in place of a converged rate.
func (s Solver) IRR(flows CashFlow) (Decimal, error) {
	if !hasSignChange(flows.amounts) {
		return Decimal{}, fmt.Errorf("%w: %d flows", ErrNoSignChange, len(flows))
	}
	return s.solve(flows.npv, largest(flows.amounts))
}

// XIRR returns the rate at which XNPV of flows is zero. See IRR for the failures.
func (s Solver) XIRR(flows *DatedCashFlow) (Decimal, error) {
	values := func(yield func(Decimal) bool) {
		for _, a := range flows.Values() {
			if !yield(a) {
				return
			}
		}
	}
	if !hasSignChange(values) {
		return Decimal{}, fmt.Errorf("%w: %d dated flows", ErrNoSignChange, flows.Len())
	}
	return s.solve(func(rate Decimal) (Decimal, Decimal, error) { return xnpv(flows, rate) }, largest(values))
}

// flatSlope is the derivative magnitude, per unit of the largest flow, below
// which a Newton step is not trusted.
var flatSlope = MustParse("1e-18")

var minusOne = NewFromInt(-1)

// solve runs Newton-Raphson on f, which returns the NPV and its derivative
// at a rate. scale is the largest flow magnitude, it is not zero.
func (s Solver) solve(f func(rate Decimal) (Decimal, Decimal, error), scale Decimal) (Decimal, error) {
	if !s.Tolerance.IsPositive() {
		return Decimal{}, fmt.Errorf("%w: tolerance %s must be positive", ErrInvalidNumericInput, s.Tolerance)
	}
	npvTolerance, flat := s.Tolerance.Mul(scale), flatSlope.Mul(scale)
	two := NewFromInt(2)
	rate := s.Guess
	for i := 0; i < s.MaxIterations; i++ {
		npv, slope, err := f(rate)
		if err != nil {
			return Decimal{}, fmt.Errorf("%w: at rate %s: %w", ErrIrrNotConverged, rate, err)
		}
		if npv.Abs().LessThan(npvTolerance) {
			return rate, nil
		}
		if slope.Abs().LessThan(flat) {
			return Decimal{}, fmt.Errorf("%w: flat npv curve at rate %s after %d iterations", ErrIrrNotConverged, rate, i)
		}
		step, err := npv.Div(slope)
		if err != nil {
			return Decimal{}, fmt.Errorf("%w: %w", ErrIrrNotConverged, err)
		}
		next := rate.Sub(step)
		if next.LessThanOrEqual(minusOne) {
			// Overshot below -100%, where nothing can be discounted:
			// move halfway between rate and -1 instead.
			next, _ = rate.Add(minusOne).Div(two)
		}
		if next.Sub(rate).Abs().LessThan(s.Tolerance) {
			return next, nil
		}
		rate = next
	}
	return Decimal{}, fmt.Errorf("%w: %d iterations from %s", ErrIrrNotConverged, s.MaxIterations, s.Guess)
}
