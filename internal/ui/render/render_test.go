package render_test

import (
	"strings"
	"testing"
	"time"

	reportdto "tempo/internal/modules/report/dto"
	trackerdto "tempo/internal/modules/tracker/dto"
	"tempo/internal/ui/render"
)

func TestSessionsWithIDsShowsActiveMarker(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	sessions := []trackerdto.SessionOutput{
		{ID: 2, Topic: "running", Start: start.Add(2 * time.Hour)},
		{ID: 1, Topic: "writing", Start: start, End: &end, Hours: 1},
	}

	got := render.Sessions(sessions, true)
	for _, want := range []string{"ID", "writing", "10.03.2026 09:00", "ACTIVE", "1.00h"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestSessionsWithoutIDsOmitsActive(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	sessions := []trackerdto.SessionOutput{
		{ID: 2, Topic: "running", Start: start.Add(2 * time.Hour)},
		{ID: 1, Topic: "writing", Start: start, End: &end, Hours: 1},
	}

	got := render.Sessions(sessions, false)
	if strings.Contains(got, "running") || strings.Contains(got, "ACTIVE") {
		t.Fatalf("active session must be omitted:\n%s", got)
	}
	if !strings.Contains(got, "writing") {
		t.Fatalf("closed session missing:\n%s", got)
	}
}

func TestPeriodStatsSingleBucketHasNoGrandTotal(t *testing.T) {
	t.Parallel()
	stats := []reportdto.PeriodStatsOutput{
		{Label: "Today", Topics: []reportdto.TopicHoursOutput{{Topic: "writing", Hours: 2}}, Total: 2},
	}

	got := render.PeriodStats(stats)
	if !strings.Contains(got, "Today") || !strings.Contains(got, "writing") {
		t.Fatalf("bucket content missing:\n%s", got)
	}
	if strings.Contains(got, "Grand Total") {
		t.Fatalf("single bucket must not print a grand total:\n%s", got)
	}
}

func TestPeriodStatsGrandTotalSumsAcrossBuckets(t *testing.T) {
	t.Parallel()
	stats := []reportdto.PeriodStatsOutput{
		{Label: "Today", Topics: []reportdto.TopicHoursOutput{{Topic: "writing", Hours: 2}}, Total: 2},
		{Label: "Yesterday", Topics: []reportdto.TopicHoursOutput{
			{Topic: "writing", Hours: 1},
			{Topic: "email", Hours: 4},
		}, Total: 5},
	}

	got := render.PeriodStats(stats)
	if !strings.Contains(got, "Grand Total") {
		t.Fatalf("grand total missing:\n%s", got)
	}
	if !strings.Contains(got, "7.00h") {
		t.Fatalf("grand total sum missing:\n%s", got)
	}
	// email (4h) outranks writing (2+1h) in the grand total.
	if strings.Index(got[strings.Index(got, "Grand Total"):], "email") > strings.Index(got[strings.Index(got, "Grand Total"):], "writing") {
		t.Fatalf("grand total must order topics by hours desc:\n%s", got)
	}
}
