package usecase

import (
	"context"

	"tempo/internal/modules/report/domain"
	"tempo/internal/modules/report/dto"
	reportin "tempo/internal/modules/report/port/in"
	"tempo/internal/modules/report/service"
)

type Interactor struct {
	svc *service.ReportService
}

func NewInteractor(svc *service.ReportService) reportin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Period(ctx context.Context, input dto.PeriodInput) ([]dto.PeriodStatsOutput, error) {
	g, err := domain.ParseGranularity(input.Granularity)
	if err != nil {
		return nil, err
	}
	stats, err := i.svc.PeriodStats(ctx, g, input.Count)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PeriodStatsOutput, 0, len(stats))
	for _, ps := range stats {
		entry := dto.PeriodStatsOutput{Label: ps.Label, Topics: make([]dto.TopicHoursOutput, 0, len(ps.Topics))}
		for _, th := range ps.Topics {
			entry.Topics = append(entry.Topics, dto.TopicHoursOutput{Topic: th.Topic, Hours: th.Hours})
			entry.Total += th.Hours
		}
		out = append(out, entry)
	}
	return out, nil
}
