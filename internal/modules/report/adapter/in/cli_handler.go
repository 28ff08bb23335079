package in

import (
	"context"

	"tempo/internal/modules/report/dto"
	reportin "tempo/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Period(ctx context.Context, granularity string, count int) ([]dto.PeriodStatsOutput, error) {
	return h.usecase.Period(ctx, dto.PeriodInput{Granularity: granularity, Count: count})
}
