package in

import (
	"context"

	"tempo/internal/modules/tracker/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	Stop(ctx context.Context, input dto.StopInput) (dto.SessionOutput, error)
	Active(ctx context.Context) (dto.ActiveOutput, error)
	List(ctx context.Context, limit int) ([]dto.SessionOutput, error)
	Closed(ctx context.Context) ([]dto.SessionOutput, error)
	Add(ctx context.Context, input dto.AddInput) (dto.SessionOutput, error)
	Edit(ctx context.Context, input dto.EditInput) error
	Delete(ctx context.Context, id int64) error
	Reset(ctx context.Context) error
}
