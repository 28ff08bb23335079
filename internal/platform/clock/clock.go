package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports local wall time. Sessions and bucket boundaries are
// expressed in the user's timezone, so Now is deliberately not UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
