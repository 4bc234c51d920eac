package tvm

import (
	"errors"
	"testing"

	"github.com/etnz/tvm/date"
)

var monthly5 = func() Decimal {
	r, err := PerPeriodRate(dec("0.05"), 12)
	if err != nil {
		panic(err)
	}
	return r
}()

func TestPayment(t *testing.T) {
	got, err := Payment(dec("1000"), monthly5, 12)
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, "Payment(1000, 0.05/12, 12)", got, "85.6074817884671145471", "1e-18")
	if s := got.StringFixed(2, HalfUp); s != "85.61" {
		t.Errorf("Payment rounded = %s, want 85.61", s)
	}
}

func TestPaymentZeroRate(t *testing.T) {
	got, err := Payment(dec("1200"), Zero, 12)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(dec("100")) {
		t.Errorf("Payment(1200, 0, 12) = %s, want 100", got)
	}
}

func TestNonConvergentPeriods(t *testing.T) {
	if _, err := Payment(dec("1000"), monthly5, 0); !errors.Is(err, ErrNonConvergentPeriods) {
		t.Errorf("Payment(periods=0) error = %v, want ErrNonConvergentPeriods", err)
	}
	if _, err := RemainingBalance(dec("1000"), monthly5, -1, 0); !errors.Is(err, ErrNonConvergentPeriods) {
		t.Errorf("RemainingBalance(periods=-1) error = %v, want ErrNonConvergentPeriods", err)
	}
	if _, err := PerPeriodRate(dec("0.05"), 0); !errors.Is(err, ErrNonConvergentPeriods) {
		t.Errorf("PerPeriodRate(0) error = %v, want ErrNonConvergentPeriods", err)
	}
	if _, err := AnnuityFutureValue(dec("100"), monthly5, -1); !errors.Is(err, ErrNonConvergentPeriods) {
		t.Errorf("AnnuityFutureValue(-1) error = %v, want ErrNonConvergentPeriods", err)
	}
}

func TestRemainingBalance(t *testing.T) {
	tests := []struct {
		name         string
		rate         Decimal
		periods      int
		paymentsMade int
		want         string
	}{
		{"nothing paid", dec("0.05"), 12, 0, "1000"},
		{"half way", dec("0.05"), 12, 6, "572.667038628849845152896762279"},
		{"all paid", dec("0.05"), 12, 12, "0"},
		{"over paid", dec("0.05"), 12, 13, "0"},
		{"zero rate", Zero, 12, 3, "750"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RemainingBalance(dec("1000"), tt.rate, tt.periods, tt.paymentsMade)
			if err != nil {
				t.Fatal(err)
			}
			assertClose(t, "RemainingBalance", got, tt.want, "1e-20")
		})
	}
	if _, err := RemainingBalance(dec("1000"), dec("0.05"), 12, -1); !errors.Is(err, ErrInvalidNumericInput) {
		t.Errorf("RemainingBalance(paymentsMade=-1) error = %v, want ErrInvalidNumericInput", err)
	}
}

func TestRemainingBalanceMatchesSchedule(t *testing.T) {
	s, err := Build(dec("25000"), monthly5, 60)
	if err != nil {
		t.Fatal(err)
	}
	for e := range s.All() {
		want, err := RemainingBalance(dec("25000"), monthly5, 60, e.Period)
		if err != nil {
			t.Fatal(err)
		}
		assertClose(t, "EndingBalance", e.EndingBalance, want.String(), "1e-25")
	}
}

func TestEffectiveAnnualRate(t *testing.T) {
	got, err := EffectiveAnnualRate(dec("0.05"), 12)
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, "EffectiveAnnualRate(0.05, 12)", got, "0.0511618978817331898", "1e-18")
	if s := got.StringFixed(5, HalfUp); s != "0.05116" {
		t.Errorf("EffectiveAnnualRate rounded = %s, want 0.05116", s)
	}

	rs := Compounded(dec("0.05"), date.Monthly)
	eff, err := rs.Effective()
	if err != nil || !eff.Equal(got) {
		t.Errorf("RateSpec.Effective() = %s, %v, want %s", eff, err, got)
	}
	if pp, _ := rs.PerPeriod(); !pp.Equal(monthly5) {
		t.Errorf("RateSpec.PerPeriod() = %s, want %s", pp, monthly5)
	}
}

func TestPresentFutureValueRoundTrip(t *testing.T) {
	for _, tt := range []struct{ p, r, n string }{
		{"1000", "0.05", "10"},
		{"123456789.12", "0.0041666", "360"},
		{"1", "0", "5"},
		{"500", "0.07", "2.5"},
	} {
		fv, err := FutureValue(dec(tt.p), dec(tt.r), dec(tt.n))
		if err != nil {
			t.Fatal(err)
		}
		pv, err := PresentValue(fv, dec(tt.r), dec(tt.n))
		if err != nil {
			t.Fatal(err)
		}
		assertClose(t, "PresentValue(FutureValue("+tt.p+"))", pv, tt.p, "1e-20")
	}
	if _, err := PresentValue(dec("100"), dec("-1"), dec("3")); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("PresentValue at -1 error = %v, want ErrDivisionByZero", err)
	}
}

func TestFutureValue(t *testing.T) {
	got, err := FutureValue(dec("1000"), dec("0.05"), dec("10"))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(dec("1628.89462677744140625")) {
		t.Errorf("FutureValue = %s", got)
	}
}

func TestAnnuities(t *testing.T) {
	fv, err := AnnuityFutureValue(dec("100"), dec("0.05"), 10)
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, "AnnuityFutureValue", fv, "1257.7892535548828125", "1e-30")

	pv, err := AnnuityPresentValue(dec("100"), dec("0.05"), 10)
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, "AnnuityPresentValue", pv, "772.173492918481251282906", "1e-20")

	zero, err := AnnuityFutureValue(dec("100"), Zero, 10)
	if err != nil || !zero.Equal(dec("1000")) {
		t.Errorf("AnnuityFutureValue(rate=0) = %s, %v, want 1000", zero, err)
	}
}

func TestSimpleAndCompound(t *testing.T) {
	if got := SimpleInterest(dec("1000"), dec("0.05"), dec("2")); !got.Equal(dec("100")) {
		t.Errorf("SimpleInterest = %s, want 100", got)
	}
	got, err := CompoundAmount(dec("1000"), dec("0.05"), dec("2"), 12)
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, "CompoundAmount", got, "1104.94133555832727466", "1e-17")
	once, err := CompoundAmount(dec("1000"), dec("0.05"), dec("2"), 1)
	if err != nil || !once.Equal(dec("1102.5")) {
		t.Errorf("CompoundAmount(n=1) = %s, %v, want 1102.5", once, err)
	}
	if _, err := CompoundAmount(dec("1000"), dec("0.05"), dec("2"), 0); !errors.Is(err, ErrNonConvergentPeriods) {
		t.Errorf("CompoundAmount(n=0) error = %v", err)
	}
}

func TestAccruedInterest(t *testing.T) {
	from, to := date.New(2025, 1, 15), date.New(2025, 7, 15)
	tests := []struct {
		convention date.DayCount
		want       string
	}{
		{date.Actual360, "5027.777777777777777777777777777777777778"}, // 181 days
		{date.Actual365, "4958.904109589041095890410958904109589041"},
		{date.Thirty360, "5000"},
	}
	for _, tt := range tests {
		t.Run(tt.convention.String(), func(t *testing.T) {
			got, err := AccruedInterest(dec("200000"), dec("0.05"), from, to, tt.convention)
			if err != nil {
				t.Fatal(err)
			}
			assertClose(t, "AccruedInterest", got, tt.want, "1e-30")
		})
	}
}

func TestParseRate(t *testing.T) {
	for in, want := range map[string]string{"0.05": "0.05", "5%": "0.05", " 4.25% ": "0.0425"} {
		got, err := ParseRate(in)
		if err != nil || !got.Equal(dec(want)) {
			t.Errorf("ParseRate(%q) = %s, %v, want %s", in, got, err, want)
		}
	}
	if _, err := ParseRate("five%"); !errors.Is(err, ErrInvalidNumericInput) {
		t.Errorf("ParseRate(five%%) error = %v", err)
	}
}
