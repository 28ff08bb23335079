package in

import (
	"context"

	"tempo/internal/modules/tracker/dto"
	trackerin "tempo/internal/modules/tracker/port/in"
)

type CLIHandler struct {
	usecase trackerin.Usecase
}

func NewCLIHandler(usecase trackerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, topic string) (dto.StartOutput, error) {
	return h.usecase.Start(ctx, dto.StartInput{Topic: topic})
}

func (h CLIHandler) Stop(ctx context.Context, topic string) (dto.SessionOutput, error) {
	return h.usecase.Stop(ctx, dto.StopInput{Topic: topic})
}

func (h CLIHandler) Active(ctx context.Context) (dto.ActiveOutput, error) {
	return h.usecase.Active(ctx)
}

func (h CLIHandler) List(ctx context.Context, limit int) ([]dto.SessionOutput, error) {
	return h.usecase.List(ctx, limit)
}

func (h CLIHandler) Add(ctx context.Context, topic, start, end string) (dto.SessionOutput, error) {
	return h.usecase.Add(ctx, dto.AddInput{Topic: topic, Start: start, End: end})
}

func (h CLIHandler) Edit(ctx context.Context, id int64, topic, start, end *string) error {
	return h.usecase.Edit(ctx, dto.EditInput{ID: id, Topic: topic, Start: start, End: end})
}

func (h CLIHandler) Delete(ctx context.Context, id int64) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}
