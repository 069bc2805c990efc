package dates

import (
	"fmt"
	"regexp"
	"time"
)

// Day is a calendar date in ISO form ("2006-01-02"), without a time
// component. Days compare correctly as plain strings, which is how all
// bucketing decisions are made.
type Day string

const layout = "2006-01-02"

var dayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// FromTime truncates a timestamp to its calendar date in the timestamp's own
// location.
func FromTime(t time.Time) Day {
	return Day(t.Format(layout))
}

// Parse validates raw user input as a Day.
func Parse(raw string) (Day, error) {
	if !dayPattern.MatchString(raw) {
		return "", fmt.Errorf("invalid date %q: want YYYY-MM-DD", raw)
	}
	if _, err := time.Parse(layout, raw); err != nil {
		return "", fmt.Errorf("invalid date %q: %w", raw, err)
	}
	return Day(raw), nil
}

func (d Day) String() string { return string(d) }

func (d Day) IsZero() bool { return d == "" }

func (d Day) Before(other Day) bool { return d < other }

func (d Day) After(other Day) bool { return d > other }
