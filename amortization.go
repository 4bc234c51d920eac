package tvm

import (
	"encoding/json"
	"fmt"
	"iter"

	"github.com/etnz/tvm/date"
)

// AmortizationEntry is one installment of a fixed-payment loan.
//
// Principal + Interest is always Payment.
type AmortizationEntry struct {
	Period        int       // 1-based
	Due           date.Date // zero unless the schedule has due dates
	Payment       Decimal
	Principal     Decimal
	Interest      Decimal
	EndingBalance Decimal // outstanding principal after this payment
}

func (e AmortizationEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("period", e.Period)
	w.Optional("due", e.Due)
	w.Append("payment", e.Payment)
	w.Append("principal", e.Principal)
	w.Append("interest", e.Interest)
	w.Append("endingBalance", e.EndingBalance)
	return w.MarshalJSON()
}

// Builder builds amortization schedules.
//
// The zero Builder keeps every amount at working precision and has no due
// dates. Builders are values: each With method returns a modified copy.
type Builder struct {
	round  bool
	places int32
	mode   RoundingMode

	first    date.Date
	every    date.Period
	calendar date.Calendar
	roll     date.Roll
}

// Rounded returns a Builder that rounds the installment and each interest
// portion to places fractional digits with mode.
func (b Builder) Rounded(places int32, mode RoundingMode) Builder {
	b.round, b.places, b.mode = true, places, mode
	return b
}

// ForCurrency returns a Builder rounding amounts to the minor unit of the
// currency code, e.g. 2 digits for "EUR", none for "JPY".
func (b Builder) ForCurrency(code string, mode RoundingMode) (Builder, error) {
	cur, err := LookupCurrency(code)
	if err != nil {
		return b, err
	}
	return b.Rounded(cur.Places(), mode), nil
}

// WithDueDates returns a Builder that dates installments: the first one is
// due on first, the next ones every period after it, each rolled onto a
// business day of calendar.
func (b Builder) WithDueDates(first date.Date, every date.Period, calendar date.Calendar, roll date.Roll) Builder {
	b.first, b.every, b.calendar, b.roll = first, every, calendar, roll
	return b
}

// Build is Builder{}.Build: a schedule at full working precision.
func Build(principal, rate Decimal, periods int) (*Schedule, error) {
	return Builder{}.Build(principal, rate, periods)
}

// Build returns the schedule of a loan of principal repaid in periods fixed
// installments at rate per period.
//
// It fails with ErrNonConvergentPeriods if periods ≤ 0.
func (b Builder) Build(principal, rate Decimal, periods int) (*Schedule, error) {
	installment, err := Payment(principal, rate, periods)
	if err != nil {
		return nil, fmt.Errorf("cannot build amortization schedule: %w", err)
	}
	s := &Schedule{
		builder:     b,
		principal:   principal,
		rate:        rate,
		periods:     periods,
		installment: b.rounding(installment),
	}
	return s, nil
}

// rounding applies the builder rounding, or trims to working precision.
func (b Builder) rounding(d Decimal) Decimal {
	if b.round {
		return d.RoundTo(b.places, b.mode)
	}
	return Decimal{trim(d.value)}
}

// Schedule is the amortization schedule of a loan.
//
// Entries are not stored: they are recomputed each time the schedule is
// ranged over, each one from the previous ending balance.
type Schedule struct {
	builder     Builder
	principal   Decimal
	rate        Decimal
	periods     int
	installment Decimal
}

// Principal returns the amount borrowed.
func (s *Schedule) Principal() Decimal { return s.principal }

// Rate returns the per-period rate.
func (s *Schedule) Rate() Decimal { return s.rate }

// Len returns the number of installments.
func (s *Schedule) Len() int { return s.periods }

// Installment returns the fixed payment. The last payment may differ from it
// by the accumulated rounding drift.
func (s *Schedule) Installment() Decimal { return s.installment }

// All returns an iterator over the entries, in period order.
//
// The last entry repays whatever balance is left, so its EndingBalance is
// exactly zero and its Payment may differ from Installment.
func (s *Schedule) All() iter.Seq[AmortizationEntry] {
	return func(yield func(AmortizationEntry) bool) {
		b := s.builder
		balance := s.principal
		for p := 1; p <= s.periods; p++ {
			e := AmortizationEntry{Period: p}
			if !b.first.IsZero() {
				e.Due = b.calendar.Adjust(b.every.Step(b.first, p-1), b.roll)
			}
			e.Interest = b.rounding(balance.Mul(s.rate))
			if p == s.periods {
				e.Principal = balance
			} else {
				e.Principal = s.installment.Sub(e.Interest)
			}
			e.Payment = e.Principal.Add(e.Interest)
			balance = balance.Sub(e.Principal)
			e.EndingBalance = balance
			if !yield(e) {
				return
			}
		}
	}
}

// Entries returns all the entries.
func (s *Schedule) Entries() []AmortizationEntry {
	entries := make([]AmortizationEntry, 0, s.periods)
	for e := range s.All() {
		entries = append(entries, e)
	}
	return entries
}

// Totals returns the sums of payments, principal and interest portions.
func (s *Schedule) Totals() (payment, principal, interest Decimal) {
	for e := range s.All() {
		payment = payment.Add(e.Payment)
		principal = principal.Add(e.Principal)
		interest = interest.Add(e.Interest)
	}
	return payment, principal, interest
}

func (s *Schedule) MarshalJSON() ([]byte, error) {
	payment, _, interest := s.Totals()
	var w jsonObjectWriter
	w.Append("principal", s.principal)
	w.Append("rate", s.rate)
	w.Append("periods", s.periods)
	w.Append("installment", s.installment)
	w.Append("totalPayment", payment)
	w.Append("totalInterest", interest)
	w.Append("entries", s.Entries())
	return w.MarshalJSON()
}

var _ json.Marshaler = (*Schedule)(nil)
