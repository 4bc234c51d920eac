package tvm

import (
	"fmt"

	"github.com/etnz/tvm/date"
)

// Closed-form time value of money formulas.
//
// All rates are per period and all period counts are in those same periods:
// converting an annual rate into a monthly one is the caller's job (see
// PerPeriodRate). Results are not rounded, call RoundTo at the boundary
// where a currency amount is needed.

// SimpleInterest returns principal × rate × time.
func SimpleInterest(principal, rate, time Decimal) Decimal {
	return principal.Mul(rate).Mul(time)
}

// CompoundAmount returns principal × (1 + rate/n)^(n×time): the amount of
// principal after time units at a rate per unit compounded n times per unit.
func CompoundAmount(principal, rate, time Decimal, n int) (Decimal, error) {
	if n <= 0 {
		return Decimal{}, fmt.Errorf("%w: compounding %d times", ErrNonConvergentPeriods, n)
	}
	m := NewFromInt(int64(n))
	r, err := rate.Div(m)
	if err != nil {
		return Decimal{}, err
	}
	f, err := One.Add(r).Pow(m.Mul(time))
	if err != nil {
		return Decimal{}, fmt.Errorf("compound amount: %w", err)
	}
	return principal.Mul(f), nil
}

// PresentValue returns futureValue / (1+rate)^periods.
//
// It fails with ErrDivisionByZero when rate is -1.
func PresentValue(futureValue, rate, periods Decimal) (Decimal, error) {
	f, err := One.Add(rate).Pow(periods)
	if err != nil {
		return Decimal{}, fmt.Errorf("present value: %w", err)
	}
	pv, err := futureValue.Div(f)
	if err != nil {
		return Decimal{}, fmt.Errorf("present value at rate %s: %w", rate, err)
	}
	return pv, nil
}

// FutureValue returns principal × (1+rate)^periods.
func FutureValue(principal, rate, periods Decimal) (Decimal, error) {
	f, err := One.Add(rate).Pow(periods)
	if err != nil {
		return Decimal{}, fmt.Errorf("future value: %w", err)
	}
	return principal.Mul(f), nil
}

// AnnuityFutureValue returns the value, right after the last payment, of
// periods payments made at the end of each period.
func AnnuityFutureValue(payment, rate Decimal, periods int) (Decimal, error) {
	if periods < 0 {
		return Decimal{}, fmt.Errorf("%w: %d periods", ErrNonConvergentPeriods, periods)
	}
	n := NewFromInt(int64(periods))
	if rate.IsZero() {
		return payment.Mul(n), nil
	}
	f, err := One.Add(rate).PowInt(int64(periods))
	if err != nil {
		return Decimal{}, err
	}
	factor, err := f.Sub(One).Div(rate)
	if err != nil {
		return Decimal{}, err
	}
	return payment.Mul(factor), nil
}

// AnnuityPresentValue returns the value, one period before the first
// payment, of periods payments made at the end of each period.
func AnnuityPresentValue(payment, rate Decimal, periods int) (Decimal, error) {
	if periods < 0 {
		return Decimal{}, fmt.Errorf("%w: %d periods", ErrNonConvergentPeriods, periods)
	}
	if rate.IsZero() {
		return payment.Mul(NewFromInt(int64(periods))), nil
	}
	f, err := One.Add(rate).PowInt(-int64(periods))
	if err != nil {
		return Decimal{}, fmt.Errorf("annuity present value at rate %s: %w", rate, err)
	}
	factor, err := One.Sub(f).Div(rate)
	if err != nil {
		return Decimal{}, err
	}
	return payment.Mul(factor), nil
}

// Payment returns the fixed installment that repays principal over periods
// periods at rate per period:
//
//	principal × rate × (1+rate)^periods / ((1+rate)^periods − 1)
//
// or principal / periods when rate is zero.
func Payment(principal, rate Decimal, periods int) (Decimal, error) {
	if periods <= 0 {
		return Decimal{}, fmt.Errorf("%w: %d periods", ErrNonConvergentPeriods, periods)
	}
	n := NewFromInt(int64(periods))
	if rate.IsZero() {
		return principal.Div(n)
	}
	f, err := One.Add(rate).PowInt(int64(periods))
	if err != nil {
		return Decimal{}, fmt.Errorf("payment at rate %s: %w", rate, err)
	}
	pmt, err := principal.Mul(rate).Mul(f).Div(f.Sub(One))
	if err != nil {
		return Decimal{}, fmt.Errorf("payment at rate %s: %w", rate, err)
	}
	return pmt, nil
}

// RemainingBalance returns the outstanding principal of a loan after
// paymentsMade installments out of periods.
//
// It is the present value of the installments still due, so it matches the
// ending balance of the same period in an unrounded amortization schedule.
// This is the present value form: it discounts the remaining installments
// instead of compounding the principal forward with (1+rate)^paymentsMade.
// It is zero once all the installments are paid, and prorated linearly when
// rate is zero.
func RemainingBalance(principal, rate Decimal, periods, paymentsMade int) (Decimal, error) {
	if periods <= 0 {
		return Decimal{}, fmt.Errorf("%w: %d periods", ErrNonConvergentPeriods, periods)
	}
	if paymentsMade < 0 {
		return Decimal{}, fmt.Errorf("%w: %d payments made", ErrInvalidNumericInput, paymentsMade)
	}
	if paymentsMade >= periods {
		return Zero, nil
	}
	left := periods - paymentsMade
	if rate.IsZero() {
		return principal.Mul(NewFromInt(int64(left))).Div(NewFromInt(int64(periods)))
	}
	pmt, err := Payment(principal, rate, periods)
	if err != nil {
		return Decimal{}, err
	}
	return AnnuityPresentValue(pmt, rate, left)
}

// EffectiveAnnualRate returns (1 + nominalRate/m)^m − 1, the rate that
// compounded once a year yields the same as nominalRate compounded m times.
func EffectiveAnnualRate(nominalRate Decimal, m int) (Decimal, error) {
	r, err := PerPeriodRate(nominalRate, m)
	if err != nil {
		return Decimal{}, err
	}
	f, err := One.Add(r).PowInt(int64(m))
	if err != nil {
		return Decimal{}, err
	}
	return f.Sub(One), nil
}

// AccruedInterest returns the simple interest accrued on principal at an
// annual rate from one date to another, the period length being measured
// with the day count convention.
func AccruedInterest(principal, annualRate Decimal, from, to date.Date, convention date.DayCount) (Decimal, error) {
	num, den := convention.YearFraction(from, to)
	t, err := NewFromInt(int64(num)).Div(NewFromInt(int64(den)))
	if err != nil {
		return Decimal{}, err
	}
	return SimpleInterest(principal, annualRate, t), nil
}
