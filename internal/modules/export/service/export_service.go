package service

import (
	"context"
	"fmt"

	"tempo/internal/modules/export/domain"
	exportout "tempo/internal/modules/export/port/out"
)

type ExportService struct {
	manifests exportout.ManifestStore
	host      exportout.Host
	writer    exportout.Writer
	outputDir string
}

func NewExportService(manifests exportout.ManifestStore, host exportout.Host, writer exportout.Writer, outputDir string) *ExportService {
	return &ExportService{manifests: manifests, host: host, writer: writer, outputDir: outputDir}
}

func (s *ExportService) WriteFile(ctx context.Context, entries []domain.Entry) (domain.Result, error) {
	return s.writer.Write(ctx, entries)
}

func (s *ExportService) ExportVia(ctx context.Context, name string, entries []domain.Entry) (domain.Result, error) {
	manifest, err := s.manifest(ctx, name)
	if err != nil {
		return domain.Result{}, err
	}
	if !manifest.Enabled {
		return domain.Result{}, fmt.Errorf("%w: %s", domain.ErrExporterDisabled, name)
	}
	return s.host.Export(ctx, manifest, entries, s.outputDir)
}

func (s *ExportService) List(ctx context.Context) ([]domain.Manifest, error) {
	return s.manifests.Load(ctx)
}

// Check starts the plugin once and verifies the reported identity matches
// the manifest.
func (s *ExportService) Check(ctx context.Context, name string) (domain.Manifest, domain.Metadata, error) {
	manifest, err := s.manifest(ctx, name)
	if err != nil {
		return domain.Manifest{}, domain.Metadata{}, err
	}
	meta, err := s.host.Describe(ctx, manifest)
	if err != nil {
		return domain.Manifest{}, domain.Metadata{}, err
	}
	if meta.Name != manifest.Name {
		return domain.Manifest{}, domain.Metadata{}, fmt.Errorf("exporter %q identifies as %q", manifest.Name, meta.Name)
	}
	return manifest, meta, nil
}

func (s *ExportService) manifest(ctx context.Context, name string) (domain.Manifest, error) {
	manifests, err := s.manifests.Load(ctx)
	if err != nil {
		return domain.Manifest{}, err
	}
	for _, m := range manifests {
		if m.Name != name {
			continue
		}
		if err := m.Validate(); err != nil {
			return domain.Manifest{}, fmt.Errorf("manifest %q: %w", name, err)
		}
		return m, nil
	}
	return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrExporterNotFound, name)
}
