package out

import (
	"context"
	"time"

	"tempo/internal/modules/report/domain"
)

// StatsReader aggregates closed sessions whose start falls in [start, end),
// grouped by topic and ordered by summed hours descending.
type StatsReader interface {
	TopicHours(ctx context.Context, start, end time.Time) ([]domain.TopicHours, error)
}
