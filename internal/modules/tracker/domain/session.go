package domain

import "time"

// Session is one tracked work interval. End is nil while the session is
// running; at most one session may be active at a time.
type Session struct {
	ID    int64
	Topic string
	Start time.Time
	End   *time.Time
}

func (s Session) Closed() bool {
	return s.End != nil
}

// Hours is the closed session length in hours, zero while active.
func (s Session) Hours() float64 {
	if s.End == nil {
		return 0
	}
	return s.End.Sub(s.Start).Hours()
}

// ElapsedHours measures a running session against now.
func (s Session) ElapsedHours(now time.Time) float64 {
	if s.End != nil {
		return s.Hours()
	}
	return now.Sub(s.Start).Hours()
}
