// Package datetime converts between the wall-clock strings users type,
// the canonical stored representation, and time.Time values.
package datetime

import (
	"fmt"
	"time"

	apperrors "tempo/internal/platform/errors"
)

const (
	// InputLayout is the layout accepted on the command line.
	InputLayout = "02.01.2006 15:04"
	// StoreLayout is the canonical stored representation: RFC 3339 with a
	// numeric offset, so ORDER BY and range predicates work on the text.
	StoreLayout = "2006-01-02T15:04:05Z07:00"
	// ExportLayout is the timestamp layout written to export files.
	ExportLayout = "2006-01-02 15:04:05"
	// FileStampLayout stamps export filenames.
	FileStampLayout = "20060102_150405"
)

// ParseInput reads a DD.MM.YYYY HH:MM wall-clock string interpreted in loc.
func ParseInput(s string, loc *time.Location) (time.Time, error) {
	wall, err := time.Parse(InputLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: datetime must be DD.MM.YYYY HH:MM", apperrors.ErrInvalidInput)
	}
	return Resolve(wall.Year(), wall.Month(), wall.Day(), wall.Hour(), wall.Minute(), loc)
}

// Resolve maps wall-clock components to an instant in loc. Wall clocks that
// fall inside a DST gap or repeat during a DST rollback are rejected rather
// than silently resolved.
func Resolve(year int, month time.Month, day, hour, min int, loc *time.Location) (time.Time, error) {
	t := time.Date(year, month, day, hour, min, 0, 0, loc)
	if t.Year() != year || t.Month() != month || t.Day() != day || t.Hour() != hour || t.Minute() != min {
		return time.Time{}, fmt.Errorf("%w: %02d.%02d.%04d %02d:%02d does not exist in %s",
			apperrors.ErrInvalidInput, day, int(month), year, hour, min, loc)
	}
	if sameWall(t, t.Add(time.Hour), loc) || sameWall(t, t.Add(-time.Hour), loc) {
		return time.Time{}, fmt.Errorf("%w: %02d.%02d.%04d %02d:%02d is ambiguous in %s",
			apperrors.ErrInvalidInput, day, int(month), year, hour, min, loc)
	}
	return t, nil
}

func sameWall(a, b time.Time, loc *time.Location) bool {
	a, b = a.In(loc), b.In(loc)
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day() &&
		a.Hour() == b.Hour() && a.Minute() == b.Minute()
}

func FormatStore(t time.Time) string {
	return t.Format(StoreLayout)
}

func ParseStore(s string) (time.Time, error) {
	t, err := time.Parse(StoreLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored timestamp %q: %w", s, err)
	}
	return t, nil
}
