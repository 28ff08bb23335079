package out

import (
	"context"

	"tempo/internal/modules/export/domain"
)

// Writer is the built-in file export target.
type Writer interface {
	Write(ctx context.Context, entries []domain.Entry) (domain.Result, error)
}

type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}

// Host drives exporter plugin binaries.
type Host interface {
	Describe(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	Export(ctx context.Context, manifest domain.Manifest, entries []domain.Entry, outputDir string) (domain.Result, error)
}
