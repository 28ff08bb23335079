package dto

import "time"

type StartInput struct {
	Topic string
}

type StartOutput struct {
	ID        int64
	Topic     string
	StartedAt time.Time
}

// StopInput optionally names the topic expected to be active; a mismatch
// rejects the stop.
type StopInput struct {
	Topic string
}

type SessionOutput struct {
	ID    int64
	Topic string
	Start time.Time
	End   *time.Time
	Hours float64
}

type ActiveOutput struct {
	ID        int64
	Topic     string
	StartedAt time.Time
	Hours     float64
}

// AddInput carries raw DD.MM.YYYY HH:MM strings; parsing and validation
// happen in the usecase.
type AddInput struct {
	Topic string
	Start string
	End   string
}

// EditInput updates only the non-nil fields.
type EditInput struct {
	ID    int64
	Topic *string
	Start *string
	End   *string
}
