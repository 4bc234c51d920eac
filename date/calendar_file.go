package date

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// CalendarFile is the on-disk description of a holiday calendar, in YAML or TOML.
//
//	weekend: [saturday, sunday]
//	holidays: [2025-05-08]
//	annual: ["01-01", "12-25"]
//	easter: [-2, 1]
//	from_year: 2024
//	to_year: 2030
//
// Annual (month-day) and Easter-relative holidays are expanded for every year
// in [FromYear, ToYear]. An empty weekend means Saturday and Sunday.
type CalendarFile struct {
	Weekend  []string `yaml:"weekend" toml:"weekend"`
	Holidays []Date   `yaml:"holidays" toml:"holidays"`
	Annual   []string `yaml:"annual" toml:"annual"`
	Easter   []int    `yaml:"easter" toml:"easter"`
	FromYear int      `yaml:"from_year" toml:"from_year"`
	ToYear   int      `yaml:"to_year" toml:"to_year"`
}

// DecodeCalendar reads a calendar file. The format is chosen from the
// extension: .yaml/.yml for YAML, anything else is TOML.
func DecodeCalendar(path string) (Calendar, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Calendar{}, fmt.Errorf("cannot read calendar: %w", err)
	}
	c, err := UnmarshalCalendar(content, filepath.Ext(path))
	if err != nil {
		return Calendar{}, fmt.Errorf("invalid calendar %q: %w", path, err)
	}
	return c, nil
}

// UnmarshalCalendar parses content as YAML when ext is ".yaml" or ".yml", as TOML otherwise.
func UnmarshalCalendar(content []byte, ext string) (Calendar, error) {
	var f CalendarFile
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &f); err != nil {
			return Calendar{}, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		if err := toml.Unmarshal(content, &f); err != nil {
			return Calendar{}, fmt.Errorf("TOML parse error: %w", err)
		}
	}
	return f.Calendar()
}

// Calendar builds the Calendar described by f.
func (f CalendarFile) Calendar() (Calendar, error) {
	weekend := []time.Weekday{time.Saturday, time.Sunday}
	if len(f.Weekend) > 0 {
		weekend = weekend[:0]
		for _, s := range f.Weekend {
			wd, err := ParseWeekday(s)
			if err != nil {
				return Calendar{}, err
			}
			weekend = append(weekend, wd)
		}
	}

	if f.ToYear < f.FromYear {
		return Calendar{}, fmt.Errorf("to_year %d is before from_year %d", f.ToYear, f.FromYear)
	}
	if (len(f.Annual) > 0 || len(f.Easter) > 0) && f.FromYear == 0 {
		return Calendar{}, fmt.Errorf("annual and easter holidays need a from_year")
	}

	holidays := append([]Date(nil), f.Holidays...)
	for y := f.FromYear; f.FromYear != 0 && y <= f.ToYear; y++ {
		for _, md := range f.Annual {
			on, err := Parse(fmt.Sprintf("%d-%s", y, md))
			if err != nil {
				return Calendar{}, fmt.Errorf("invalid annual holiday %q: %w", md, err)
			}
			holidays = append(holidays, on)
		}
		for _, offset := range f.Easter {
			holidays = append(holidays, Easter(y).Add(offset))
		}
	}
	return NewCalendarWithWeekend(weekend, holidays...)
}

// ParseWeekday parses an English weekday name, full ("saturday") or short ("sat").
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := strings.ToLower(wd.String())
		if s == name || (len(s) == 3 && strings.HasPrefix(name, s)) {
			return wd, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}
