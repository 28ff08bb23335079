package out

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tempo/internal/modules/report/domain"
	reportout "tempo/internal/modules/report/port/out"
	"tempo/internal/platform/datetime"
)

// SQLiteStatsReader aggregates directly in SQL over the sessions table.
// Bucket boundaries are bound in the stored text representation so the
// comparison happens in the same timezone-qualified encoding as the data.
type SQLiteStatsReader struct {
	db *sql.DB
}

func NewSQLiteStatsReader(db *sql.DB) reportout.StatsReader {
	return &SQLiteStatsReader{db: db}
}

func (r *SQLiteStatsReader) TopicHours(ctx context.Context, start, end time.Time) ([]domain.TopicHours, error) {
	const query = `
SELECT topic, SUM((julianday(end_time) - julianday(start_time)) * 24) AS hours
FROM sessions
WHERE end_time IS NOT NULL
  AND start_time >= ?
  AND start_time < ?
GROUP BY topic
ORDER BY hours DESC
`
	rows, err := r.db.QueryContext(ctx, query, datetime.FormatStore(start), datetime.FormatStore(end))
	if err != nil {
		return nil, fmt.Errorf("query topic hours: %w", err)
	}
	defer rows.Close()

	var topics []domain.TopicHours
	for rows.Next() {
		var th domain.TopicHours
		if err := rows.Scan(&th.Topic, &th.Hours); err != nil {
			return nil, fmt.Errorf("scan topic hours: %w", err)
		}
		topics = append(topics, th)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate topic hours: %w", err)
	}
	return topics, nil
}
