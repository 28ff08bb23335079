package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tempo/internal/modules/export/domain"
	"tempo/internal/modules/export/dto"
	"tempo/internal/modules/export/service"
	"tempo/internal/modules/export/usecase"
	trackerdto "tempo/internal/modules/tracker/dto"
)

type fakeTracker struct {
	closed []trackerdto.SessionOutput
}

func (f *fakeTracker) Start(context.Context, trackerdto.StartInput) (trackerdto.StartOutput, error) {
	return trackerdto.StartOutput{}, nil
}
func (f *fakeTracker) Stop(context.Context, trackerdto.StopInput) (trackerdto.SessionOutput, error) {
	return trackerdto.SessionOutput{}, nil
}
func (f *fakeTracker) Active(context.Context) (trackerdto.ActiveOutput, error) {
	return trackerdto.ActiveOutput{}, nil
}
func (f *fakeTracker) List(context.Context, int) ([]trackerdto.SessionOutput, error) {
	return nil, nil
}
func (f *fakeTracker) Closed(context.Context) ([]trackerdto.SessionOutput, error) {
	return f.closed, nil
}
func (f *fakeTracker) Add(context.Context, trackerdto.AddInput) (trackerdto.SessionOutput, error) {
	return trackerdto.SessionOutput{}, nil
}
func (f *fakeTracker) Edit(context.Context, trackerdto.EditInput) error { return nil }
func (f *fakeTracker) Delete(context.Context, int64) error              { return nil }
func (f *fakeTracker) Reset(context.Context) error                      { return nil }

type fakeWriter struct {
	entries []domain.Entry
}

func (f *fakeWriter) Write(_ context.Context, entries []domain.Entry) (domain.Result, error) {
	f.entries = entries
	return domain.Result{Path: "/tmp/out.csv", Count: len(entries)}, nil
}

type fakeManifests struct {
	manifests []domain.Manifest
}

func (f *fakeManifests) Load(context.Context) ([]domain.Manifest, error) {
	return f.manifests, nil
}

type fakeHost struct {
	meta     domain.Metadata
	exported []domain.Entry
}

func (f *fakeHost) Describe(context.Context, domain.Manifest) (domain.Metadata, error) {
	return f.meta, nil
}

func (f *fakeHost) Export(_ context.Context, _ domain.Manifest, entries []domain.Entry, _ string) (domain.Result, error) {
	f.exported = entries
	return domain.Result{Path: "/tmp/out.jsonl", Count: len(entries)}, nil
}

func closedSession(topic string, start time.Time, hours float64) trackerdto.SessionOutput {
	end := start.Add(time.Duration(hours * float64(time.Hour)))
	return trackerdto.SessionOutput{Topic: topic, Start: start, End: &end, Hours: hours}
}

func TestExportSkipsActiveSessions(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tracker := &fakeTracker{closed: []trackerdto.SessionOutput{
		closedSession("writing", start, 2),
		{Topic: "running", Start: start.Add(3 * time.Hour)},
	}}
	writer := &fakeWriter{}
	uc := usecase.NewInteractor(service.NewExportService(&fakeManifests{}, &fakeHost{}, writer, "."), tracker)

	out, err := uc.Export(context.Background(), dto.ExportInput{})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if out.Count != 1 || out.Path != "/tmp/out.csv" {
		t.Fatalf("unexpected output %+v", out)
	}
	if len(writer.entries) != 1 || writer.entries[0].Topic != "writing" {
		t.Fatalf("unexpected entries %+v", writer.entries)
	}
}

func TestExportViaPlugin(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tracker := &fakeTracker{closed: []trackerdto.SessionOutput{closedSession("writing", start, 2)}}
	manifests := &fakeManifests{manifests: []domain.Manifest{
		{Name: "jsonl", Version: "1.0.0", Binary: "/opt/jsonl", Enabled: true},
	}}
	host := &fakeHost{}
	uc := usecase.NewInteractor(service.NewExportService(manifests, host, &fakeWriter{}, "."), tracker)

	out, err := uc.Export(context.Background(), dto.ExportInput{Plugin: "jsonl"})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if out.Path != "/tmp/out.jsonl" || len(host.exported) != 1 {
		t.Fatalf("plugin path not taken: %+v", out)
	}
}

func TestExportViaUnknownPlugin(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewExportService(&fakeManifests{}, &fakeHost{}, &fakeWriter{}, "."), &fakeTracker{})

	_, err := uc.Export(context.Background(), dto.ExportInput{Plugin: "ghost"})
	if !errors.Is(err, domain.ErrExporterNotFound) {
		t.Fatalf("expected ErrExporterNotFound, got %v", err)
	}
}

func TestExportViaDisabledPlugin(t *testing.T) {
	t.Parallel()
	manifests := &fakeManifests{manifests: []domain.Manifest{
		{Name: "jsonl", Version: "1.0.0", Binary: "/opt/jsonl", Enabled: false},
	}}
	uc := usecase.NewInteractor(service.NewExportService(manifests, &fakeHost{}, &fakeWriter{}, "."), &fakeTracker{})

	_, err := uc.Export(context.Background(), dto.ExportInput{Plugin: "jsonl"})
	if !errors.Is(err, domain.ErrExporterDisabled) {
		t.Fatalf("expected ErrExporterDisabled, got %v", err)
	}
}

func TestCheckExporterRejectsIdentityMismatch(t *testing.T) {
	t.Parallel()
	manifests := &fakeManifests{manifests: []domain.Manifest{
		{Name: "jsonl", Version: "1.0.0", Binary: "/opt/jsonl", Enabled: true},
	}}
	host := &fakeHost{meta: domain.Metadata{Name: "impostor", Version: "9.9.9"}}
	uc := usecase.NewInteractor(service.NewExportService(manifests, host, &fakeWriter{}, "."), &fakeTracker{})

	if _, err := uc.CheckExporter(context.Background(), "jsonl"); err == nil {
		t.Fatalf("expected identity mismatch error")
	}
}

func TestCheckExporterReportsPluginMetadata(t *testing.T) {
	t.Parallel()
	manifests := &fakeManifests{manifests: []domain.Manifest{
		{Name: "jsonl", Version: "1.0.0", Binary: "/opt/jsonl", Enabled: true},
	}}
	host := &fakeHost{meta: domain.Metadata{Name: "jsonl", Version: "1.2.0"}}
	uc := usecase.NewInteractor(service.NewExportService(manifests, host, &fakeWriter{}, "."), &fakeTracker{})

	out, err := uc.CheckExporter(context.Background(), "jsonl")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if out.Name != "jsonl" || out.Version != "1.2.0" {
		t.Fatalf("unexpected output %+v", out)
	}
}
