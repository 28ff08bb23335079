package out_test

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	out "tempo/internal/modules/report/adapter/out"
	trackerout "tempo/internal/modules/tracker/adapter/out"
)

func TestTopicHoursAggregation(t *testing.T) {
	t.Parallel()
	store, err := trackerout.NewSQLiteSessionStore(filepath.Join(t.TempDir(), "tempo.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	insert := func(topic string, startHour, endHour float64) {
		t.Helper()
		start := day.Add(time.Duration(startHour * float64(time.Hour)))
		end := day.Add(time.Duration(endHour * float64(time.Hour)))
		if _, err := store.Insert(ctx, topic, start, end); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	insert("writing", 9, 11)    // 2h
	insert("email", 11, 12.5)   // 1.5h
	insert("writing", 13, 13.5) // 0.5h

	// An open session and one outside the window must not count.
	if _, err := store.Start(ctx, "running", day.Add(14*time.Hour)); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := store.Insert(ctx, "writing", day.AddDate(0, 0, -1), day.AddDate(0, 0, -1).Add(time.Hour)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	reader := out.NewSQLiteStatsReader(store.DB())
	topics, err := reader.TopicHours(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("topic hours: %v", err)
	}

	if len(topics) != 2 {
		t.Fatalf("expected 2 topics, got %+v", topics)
	}
	if topics[0].Topic != "writing" || topics[1].Topic != "email" {
		t.Fatalf("expected descending hours order, got %+v", topics)
	}
	if math.Abs(topics[0].Hours-2.5) > 1e-6 {
		t.Fatalf("writing: expected 2.5h, got %v", topics[0].Hours)
	}
	if math.Abs(topics[1].Hours-1.5) > 1e-6 {
		t.Fatalf("email: expected 1.5h, got %v", topics[1].Hours)
	}
}

func TestTopicHoursEmptyWindow(t *testing.T) {
	t.Parallel()
	store, err := trackerout.NewSQLiteSessionStore(filepath.Join(t.TempDir(), "tempo.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	reader := out.NewSQLiteStatsReader(store.DB())
	topics, err := reader.TopicHours(context.Background(), time.Now().Add(-time.Hour), time.Now())
	if err != nil {
		t.Fatalf("topic hours: %v", err)
	}
	if len(topics) != 0 {
		t.Fatalf("expected no rows, got %+v", topics)
	}
}
