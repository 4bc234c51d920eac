package tvm

import "errors"

// Errors returned by the engine. They are always wrapped with some context,
// use errors.Is to branch on the kind.
var (
	// ErrInvalidNumericInput is returned when an input is not a finite base-10 number.
	ErrInvalidNumericInput = errors.New("invalid numeric input")
	// ErrDivisionByZero is returned when a formula divides by zero, e.g. discounting at rate -1.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNonConvergentPeriods is returned when a number of periods is not strictly positive.
	ErrNonConvergentPeriods = errors.New("number of periods must be positive")
	// ErrNoSignChange is returned when IRR is requested on cash flows that are all inflows or all outflows.
	ErrNoSignChange = errors.New("cash flows have no sign change")
	// ErrIrrNotConverged is returned when the IRR search exhausts its iterations or hits a flat NPV curve.
	ErrIrrNotConverged = errors.New("irr did not converge")
	// ErrUnknownCurrency is returned for an ISO 4217 code with no known minor unit.
	ErrUnknownCurrency = errors.New("unknown currency")
)
