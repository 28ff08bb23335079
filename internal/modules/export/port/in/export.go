package in

import (
	"context"

	"tempo/internal/modules/export/dto"
)

type Usecase interface {
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
	ListExporters(ctx context.Context) ([]dto.ExporterOutput, error)
	CheckExporter(ctx context.Context, name string) (dto.ExporterOutput, error)
}
