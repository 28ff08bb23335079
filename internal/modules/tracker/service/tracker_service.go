package service

import (
	"context"
	"time"

	"tempo/internal/modules/tracker/domain"
	trackerout "tempo/internal/modules/tracker/port/out"
	"tempo/internal/platform/clock"
)

type TrackerService struct {
	clock clock.Clock
	store trackerout.SessionStore
}

func NewTrackerService(clock clock.Clock, store trackerout.SessionStore) *TrackerService {
	return &TrackerService{clock: clock, store: store}
}

func (s *TrackerService) Start(ctx context.Context, topic string) (domain.Session, error) {
	return s.store.Start(ctx, topic, s.clock.Now())
}

// Stop closes the given active session at the current instant. The end is
// clamped so it never precedes the start.
func (s *TrackerService) Stop(ctx context.Context, active domain.Session) (domain.Session, error) {
	end := s.clock.Now()
	if end.Before(active.Start) {
		end = active.Start
	}
	if err := s.store.Finish(ctx, active.ID, end); err != nil {
		return domain.Session{}, err
	}
	active.End = &end
	return active, nil
}

func (s *TrackerService) Elapsed(sess domain.Session) time.Duration {
	return s.clock.Now().Sub(sess.Start)
}

// Location is the timezone all wall-clock input is interpreted in.
func (s *TrackerService) Location() *time.Location {
	return s.clock.Now().Location()
}
