package out_test

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	out "tempo/internal/modules/export/adapter/out"
	"tempo/internal/modules/export/domain"
)

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time { return f.now }

func TestCSVWriterWritesHeaderAndRows(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	clk := fixedClock{now: time.Date(2026, 3, 10, 16, 4, 5, 0, time.UTC)}
	writer := out.NewCSVWriter(clk, dir)

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	entries := []domain.Entry{
		{Topic: "writing", Start: start, End: start.Add(90 * time.Minute)},
		{Topic: "email, inbox", Start: start.Add(2 * time.Hour), End: start.Add(3 * time.Hour)},
	}

	result, err := writer.Write(context.Background(), entries)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if result.Count != 2 {
		t.Fatalf("expected count 2, got %d", result.Count)
	}
	if result.Path != filepath.Join(dir, "tempo_export_20260310_160405.csv") {
		t.Fatalf("unexpected path %q", result.Path)
	}

	f, err := os.Open(result.Path)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}

	want := [][]string{
		{"start", "end", "duration (hours)", "topic"},
		{"2026-03-10 09:00:00", "2026-03-10 10:30:00", "1.50", "writing"},
		{"2026-03-10 11:00:00", "2026-03-10 12:00:00", "1.00", "email, inbox"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Fatalf("got %v, want %v", records, want)
	}
}

func TestCSVWriterEmptyExport(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	clk := fixedClock{now: time.Date(2026, 3, 10, 16, 4, 5, 0, time.UTC)}
	writer := out.NewCSVWriter(clk, dir)

	result, err := writer.Write(context.Background(), nil)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if result.Count != 0 {
		t.Fatalf("expected count 0, got %d", result.Count)
	}

	f, err := os.Open(result.Path)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected header only, got %v", records)
	}
}
