package date

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEaster(t *testing.T) {
	testCases := []struct {
		year int
		want Date
	}{
		{2023, New(2023, time.April, 9)},
		{2024, New(2024, time.March, 31)},
		{2025, New(2025, time.April, 20)},
		{2038, New(2038, time.April, 25)},
	}
	for _, tc := range testCases {
		if got := Easter(tc.year); got != tc.want {
			t.Errorf("Easter(%d) = %v, want %v", tc.year, got, tc.want)
		}
	}
}

func TestUnmarshalCalendar(t *testing.T) {
	yamlDoc := `
weekend: [saturday, sun]
holidays: [2025-05-08]
annual: ["01-01", "12-25"]
easter: [-2, 1]
from_year: 2025
to_year: 2026
`
	tomlDoc := `
weekend = ["saturday", "sunday"]
holidays = ["2025-05-08"]
annual = ["01-01", "12-25"]
easter = [-2, 1]
from_year = 2025
to_year = 2026
`
	for ext, doc := range map[string]string{".yaml": yamlDoc, ".toml": tomlDoc} {
		t.Run(ext, func(t *testing.T) {
			cal, err := UnmarshalCalendar([]byte(doc), ext)
			if err != nil {
				t.Fatalf("UnmarshalCalendar() error = %v", err)
			}
			for _, holiday := range []Date{
				New(2025, time.May, 8),
				New(2025, time.December, 25),
				New(2026, time.January, 1),
				New(2025, time.April, 18), // Good Friday
				New(2025, time.April, 21), // Easter Monday
				New(2026, time.April, 6),  // Easter Monday
			} {
				if !cal.IsHoliday(holiday) {
					t.Errorf("IsHoliday(%v) = false, want true", holiday)
				}
			}
			if got := len(cal.Holidays()); got != 9 {
				t.Errorf("len(Holidays()) = %d, want 9", got)
			}
		})
	}
}

func TestDecodeCalendar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar.yml")
	if err := os.WriteFile(path, []byte("weekend: [fri, sat]\nholidays: [2025-06-06]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cal, err := DecodeCalendar(path)
	if err != nil {
		t.Fatalf("DecodeCalendar() error = %v", err)
	}
	if cal.IsBusinessDay(New(2025, time.June, 6)) {
		t.Errorf("2025-06-06 is a friday holiday, want non business day")
	}
	if !cal.IsBusinessDay(New(2025, time.June, 8)) {
		t.Errorf("2025-06-08 is a sunday, want business day with a friday/saturday weekend")
	}

	if _, err := DecodeCalendar(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("DecodeCalendar(missing) want error")
	}
}

func TestCalendarFileErrors(t *testing.T) {
	testCases := []struct {
		name string
		f    CalendarFile
	}{
		{"unknown weekday", CalendarFile{Weekend: []string{"caturday"}}},
		{"annual without years", CalendarFile{Annual: []string{"12-25"}}},
		{"reversed years", CalendarFile{FromYear: 2026, ToYear: 2025}},
		{"invalid annual", CalendarFile{Annual: []string{"13-45"}, FromYear: 2025, ToYear: 2025}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.f.Calendar(); err == nil {
				t.Errorf("Calendar() want error")
			}
		})
	}
}
