package service

import (
	"context"

	"tempo/internal/modules/report/domain"
	reportout "tempo/internal/modules/report/port/out"
	"tempo/internal/platform/clock"
)

type ReportService struct {
	clock  clock.Clock
	reader reportout.StatsReader
}

func NewReportService(clock clock.Clock, reader reportout.StatsReader) *ReportService {
	return &ReportService{clock: clock, reader: reader}
}

// PeriodStats materializes count buckets of granularity g ending now, each
// populated with its per-topic aggregate.
func (s *ReportService) PeriodStats(ctx context.Context, g domain.Granularity, count int) ([]domain.PeriodStats, error) {
	buckets, err := domain.Buckets(s.clock.Now(), g, count)
	if err != nil {
		return nil, err
	}
	stats := make([]domain.PeriodStats, 0, len(buckets))
	for _, bucket := range buckets {
		topics, err := s.reader.TopicHours(ctx, bucket.Start, bucket.End)
		if err != nil {
			return nil, err
		}
		stats = append(stats, domain.PeriodStats{Label: bucket.Label, Topics: topics})
	}
	return stats, nil
}
