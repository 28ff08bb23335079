package in

import (
	"context"

	"tempo/internal/modules/report/dto"
)

type Usecase interface {
	Period(ctx context.Context, input dto.PeriodInput) ([]dto.PeriodStatsOutput, error)
}
