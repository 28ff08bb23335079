// Package domain computes calendar-aligned reporting buckets. Bucket 0 is
// the current, partial unit ending at "now"; earlier buckets cover whole
// units and chain together with no gaps or overlaps.
package domain

import (
	"fmt"
	"strconv"
	"time"

	"tempo/internal/platform/datetime"
	apperrors "tempo/internal/platform/errors"
)

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityDay, GranularityWeek, GranularityMonth, GranularityYear:
		return Granularity(s), nil
	default:
		return "", fmt.Errorf("%w: period must be day, week, month or year", apperrors.ErrInvalidInput)
	}
}

// Bucket is one calendar window; Start is inclusive, End exclusive.
type Bucket struct {
	Label string
	Start time.Time
	End   time.Time
}

type TopicHours struct {
	Topic string
	Hours float64
}

// PeriodStats is the ephemeral per-bucket aggregate, never persisted.
type PeriodStats struct {
	Label  string
	Topics []TopicHours
}

// Buckets computes count consecutive buckets of granularity g ending at now,
// most recent first. A boundary landing on a nonexistent or ambiguous local
// time fails the whole computation.
func Buckets(now time.Time, g Granularity, count int) ([]Bucket, error) {
	buckets := make([]Bucket, 0, count)
	for i := 0; i < count; i++ {
		start, err := unitStart(now, g, i)
		if err != nil {
			return nil, err
		}
		end := now
		if i > 0 {
			if end, err = unitStart(now, g, i-1); err != nil {
				return nil, err
			}
		}
		buckets = append(buckets, Bucket{Label: label(g, i, start, end), Start: start, End: end})
	}
	return buckets, nil
}

// unitStart is the canonical beginning of the calendar unit back units
// before the one containing now.
func unitStart(now time.Time, g Granularity, back int) (time.Time, error) {
	loc := now.Location()
	switch g {
	case GranularityDay:
		return dayStart(now, back)
	case GranularityWeek:
		// Days since Monday, the ISO week start.
		offset := (int(now.Weekday()) + 6) % 7
		return dayStart(now, offset+7*back)
	case GranularityMonth:
		// Floor division over a combined year*12+month index keeps the
		// rollover correct when subtracting across January.
		idx := now.Year()*12 + int(now.Month()) - 1 - back
		return datetime.Resolve(floorDiv(idx, 12), time.Month(floorMod(idx, 12)+1), 1, 0, 0, loc)
	case GranularityYear:
		return datetime.Resolve(now.Year()-back, time.January, 1, 0, 0, loc)
	default:
		return time.Time{}, fmt.Errorf("%w: unknown granularity %q", apperrors.ErrInvalidInput, g)
	}
}

// dayStart normalizes the date arithmetic in UTC (no DST there) and then
// resolves midnight in the local timezone.
func dayStart(now time.Time, daysBack int) (time.Time, error) {
	d := time.Date(now.Year(), now.Month(), now.Day()-daysBack, 0, 0, 0, 0, time.UTC)
	return datetime.Resolve(d.Year(), d.Month(), d.Day(), 0, 0, now.Location())
}

func label(g Granularity, index int, start, end time.Time) string {
	switch g {
	case GranularityDay:
		switch index {
		case 0:
			return "Today"
		case 1:
			return "Yesterday"
		default:
			return start.Format("Monday, 02.01.2006")
		}
	case GranularityWeek:
		_, week := start.ISOWeek()
		return fmt.Sprintf("Week %02d (%s - %s)", week, start.Format("02.01"), end.Format("02.01.2006"))
	case GranularityMonth:
		return start.Format("January 2006")
	default:
		return strconv.Itoa(start.Year())
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
