package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	exporterrpc "tempo/internal/modules/export/adapter/out/rpc"
	"tempo/internal/modules/export/domain"
	exportout "tempo/internal/modules/export/port/out"
	"tempo/internal/platform/datetime"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 10 * time.Second
)

type GRPCHost struct{}

func NewGRPCHost() exportout.Host {
	return &GRPCHost{}
}

func (h *GRPCHost) Describe(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error) {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return domain.Metadata{}, err
	}
	defer closeFn()

	callCtx, cancel := callContext(ctx, defaultCallTimeout)
	defer cancel()
	meta, err := client.GetMetadata(callCtx)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("get metadata: %w", err)
	}
	return domain.Metadata{Name: meta.Name, Version: meta.Version}, nil
}

func (h *GRPCHost) Export(ctx context.Context, manifest domain.Manifest, entries []domain.Entry, outputDir string) (domain.Result, error) {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return domain.Result{}, err
	}
	defer closeFn()

	request := &exporterrpc.ExportRequest{OutputDir: outputDir, Entries: make([]exporterrpc.Entry, 0, len(entries))}
	for _, entry := range entries {
		request.Entries = append(request.Entries, exporterrpc.Entry{
			Topic: entry.Topic,
			Start: datetime.FormatStore(entry.Start),
			End:   datetime.FormatStore(entry.End),
		})
	}

	callCtx, cancel := callContext(ctx, defaultCallTimeout)
	defer cancel()
	response, err := client.Export(callCtx, request)
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return domain.Result{}, fmt.Errorf("%w: %s", domain.ErrExporterTimeout, manifest.Name)
		}
		return domain.Result{}, fmt.Errorf("run exporter %s: %w", manifest.Name, err)
	}
	return domain.Result{Path: response.Path, Count: int(response.Count)}, nil
}

func (h *GRPCHost) connect(manifest domain.Manifest) (exporterrpc.ExporterClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  exporterrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          exporterrpc.PluginMap(nil),
		Cmd:              exec.Command(manifest.Binary),
		Managed:          true,
		StartTimeout:     defaultStartTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start exporter %s: %w", manifest.Name, err)
	}
	raw, err := rpcClient.Dispense(exporterrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense exporter %s: %w", manifest.Name, err)
	}
	typed, ok := raw.(exporterrpc.ExporterClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("exporter rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
