// Package tvm computes time value of money quantities with exact decimal
// arithmetic: interest accrual, present and future values, loan payments,
// amortization schedules and internal rates of return.
//
// Amounts and rates are Decimal values, kept at WorkingPrecision fractional
// digits until an explicit RoundTo with a RoundingMode. Every formula takes
// per-period rates; PerPeriodRate and RateSpec convert nominal annual rates.
//
// Functions are pure and keep no global state, they can be called
// concurrently. Failures are returned as wrapped sentinel errors
// (ErrDivisionByZero, ErrNoSignChange, ...) to be tested with errors.Is.
//
// Calendar dates, business day calendars and day count conventions live in
// the date subpackage. This package serves as the foundation of the tvm
// command-line tool.
package tvm
