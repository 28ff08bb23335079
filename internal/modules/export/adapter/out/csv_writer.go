package out

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"tempo/internal/modules/export/domain"
	exportout "tempo/internal/modules/export/port/out"
	"tempo/internal/platform/clock"
	"tempo/internal/platform/datetime"
)

// CSVWriter writes closed sessions to a timestamped file in dir.
type CSVWriter struct {
	clock clock.Clock
	dir   string
}

func NewCSVWriter(clock clock.Clock, dir string) exportout.Writer {
	return &CSVWriter{clock: clock, dir: dir}
}

func (w *CSVWriter) Write(_ context.Context, entries []domain.Entry) (domain.Result, error) {
	name := fmt.Sprintf("tempo_export_%s.csv", w.clock.Now().Format(datetime.FileStampLayout))
	path := filepath.Join(w.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return domain.Result{}, fmt.Errorf("create export file: %w", err)
	}

	cw := csv.NewWriter(f)
	records := [][]string{{"start", "end", "duration (hours)", "topic"}}
	for _, entry := range entries {
		records = append(records, []string{
			entry.Start.Format(datetime.ExportLayout),
			entry.End.Format(datetime.ExportLayout),
			fmt.Sprintf("%.2f", entry.Hours()),
			entry.Topic,
		})
	}
	if err := cw.WriteAll(records); err != nil {
		_ = f.Close()
		return domain.Result{}, fmt.Errorf("write export file: %w", err)
	}
	if err := f.Close(); err != nil {
		return domain.Result{}, fmt.Errorf("close export file: %w", err)
	}
	return domain.Result{Path: path, Count: len(entries)}, nil
}
