package usecase

import (
	"context"

	"tempo/internal/modules/export/domain"
	"tempo/internal/modules/export/dto"
	exportin "tempo/internal/modules/export/port/in"
	"tempo/internal/modules/export/service"
	trackerdto "tempo/internal/modules/tracker/dto"
	trackerin "tempo/internal/modules/tracker/port/in"
)

type Interactor struct {
	svc     *service.ExportService
	tracker trackerin.Usecase
}

func NewInteractor(svc *service.ExportService, tracker trackerin.Usecase) exportin.Usecase {
	return &Interactor{svc: svc, tracker: tracker}
}

func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	sessions, err := i.tracker.Closed(ctx)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	entries := toEntries(sessions)

	var result domain.Result
	if input.Plugin == "" {
		result, err = i.svc.WriteFile(ctx, entries)
	} else {
		result, err = i.svc.ExportVia(ctx, input.Plugin, entries)
	}
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{Path: result.Path, Count: result.Count}, nil
}

func (i *Interactor) ListExporters(ctx context.Context) ([]dto.ExporterOutput, error) {
	manifests, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExporterOutput, 0, len(manifests))
	for _, m := range manifests {
		out = append(out, dto.ExporterOutput{Name: m.Name, Version: m.Version, Binary: m.Binary, Enabled: m.Enabled})
	}
	return out, nil
}

func (i *Interactor) CheckExporter(ctx context.Context, name string) (dto.ExporterOutput, error) {
	manifest, meta, err := i.svc.Check(ctx, name)
	if err != nil {
		return dto.ExporterOutput{}, err
	}
	return dto.ExporterOutput{Name: meta.Name, Version: meta.Version, Binary: manifest.Binary, Enabled: manifest.Enabled}, nil
}

func toEntries(sessions []trackerdto.SessionOutput) []domain.Entry {
	entries := make([]domain.Entry, 0, len(sessions))
	for _, sess := range sessions {
		if sess.End == nil {
			continue
		}
		entries = append(entries, domain.Entry{Topic: sess.Topic, Start: sess.Start, End: *sess.End})
	}
	return entries
}
