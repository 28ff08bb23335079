package datetime_test

import (
	"errors"
	"testing"
	"time"

	"tempo/internal/platform/datetime"
	apperrors "tempo/internal/platform/errors"
)

func TestParseInputValid(t *testing.T) {
	t.Parallel()
	got, err := datetime.ParseInput("24.12.2026 18:30", time.UTC)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2026, 12, 24, 18, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseInputMalformed(t *testing.T) {
	t.Parallel()
	for _, input := range []string{"", "2026-12-24 18:30", "24.12.2026", "24.12.2026 25:00", "32.01.2026 10:00"} {
		if _, err := datetime.ParseInput(input, time.UTC); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("input %q: expected ErrInvalidInput, got %v", input, err)
		}
	}
}

func TestStoreRoundtrip(t *testing.T) {
	t.Parallel()
	zone := time.FixedZone("UTC+2", 2*60*60)
	orig := time.Date(2026, 6, 1, 14, 45, 12, 0, zone)

	parsed, err := datetime.ParseStore(datetime.FormatStore(orig))
	if err != nil {
		t.Fatalf("roundtrip: %v", err)
	}
	if !parsed.Equal(orig) {
		t.Fatalf("got %v, want %v", parsed, orig)
	}
}

func TestParseStoreRejectsGarbage(t *testing.T) {
	t.Parallel()
	if _, err := datetime.ParseStore("not-a-timestamp"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestResolveRejectsDSTGap(t *testing.T) {
	t.Parallel()
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 29.03.2026 02:30 never happens: clocks jump from 02:00 to 03:00.
	_, err = datetime.Resolve(2026, time.March, 29, 2, 30, berlin)
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestResolveRejectsDSTAmbiguity(t *testing.T) {
	t.Parallel()
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 25.10.2026 02:30 happens twice: clocks roll back from 03:00 to 02:00.
	_, err = datetime.Resolve(2026, time.October, 25, 2, 30, berlin)
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestResolveAcceptsUnambiguousLocalTime(t *testing.T) {
	t.Parallel()
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	got, err := datetime.Resolve(2026, time.July, 1, 12, 0, berlin)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.Hour() != 12 || got.Minute() != 0 {
		t.Fatalf("unexpected wall clock %v", got)
	}
}
