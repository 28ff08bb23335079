package in

import (
	"context"

	"tempo/internal/modules/export/dto"
	exportin "tempo/internal/modules/export/port/in"
)

type CLIHandler struct {
	usecase exportin.Usecase
}

func NewCLIHandler(usecase exportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Export(ctx context.Context, plugin string) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, dto.ExportInput{Plugin: plugin})
}

func (h CLIHandler) ListExporters(ctx context.Context) ([]dto.ExporterOutput, error) {
	return h.usecase.ListExporters(ctx)
}

func (h CLIHandler) CheckExporter(ctx context.Context, name string) (dto.ExporterOutput, error) {
	return h.usecase.CheckExporter(ctx, name)
}
