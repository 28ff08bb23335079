package domain_test

import (
	"testing"
	"time"

	"tempo/internal/modules/tracker/domain"
)

func TestSessionHours(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	open := domain.Session{Topic: "a", Start: start}
	if open.Closed() || open.Hours() != 0 {
		t.Fatalf("open session must report zero hours")
	}

	closed := domain.Session{Topic: "a", Start: start, End: &end}
	if !closed.Closed() {
		t.Fatalf("session with end must be closed")
	}
	if closed.Hours() != 1.5 {
		t.Fatalf("expected 1.5 hours, got %v", closed.Hours())
	}
}

func TestSessionElapsedHours(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	now := start.Add(15 * time.Minute)

	open := domain.Session{Start: start}
	if got := open.ElapsedHours(now); got != 0.25 {
		t.Fatalf("expected 0.25, got %v", got)
	}

	end := start.Add(time.Hour)
	closed := domain.Session{Start: start, End: &end}
	if got := closed.ElapsedHours(now.Add(48 * time.Hour)); got != 1 {
		t.Fatalf("closed session must ignore now, got %v", got)
	}
}
