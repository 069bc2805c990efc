package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock returns local time; calendar-day bucketing must follow the
// user's timezone, not UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
