// Command jsonl is an exporter plugin that writes sessions as JSON Lines.
// Build it and list the binary in plugins.yaml to use it via
// `tempo export --plugin jsonl`.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-plugin"

	exporterrpc "tempo/internal/modules/export/adapter/out/rpc"
)

const (
	pluginName    = "jsonl"
	pluginVersion = "1.0.0"
)

type record struct {
	Topic string  `json:"topic"`
	Start string  `json:"start"`
	End   string  `json:"end"`
	Hours float64 `json:"hours"`
}

type server struct{}

func (server) GetMetadata(context.Context, *exporterrpc.Empty) (*exporterrpc.Metadata, error) {
	return &exporterrpc.Metadata{Name: pluginName, Version: pluginVersion}, nil
}

func (server) Export(_ context.Context, in *exporterrpc.ExportRequest) (*exporterrpc.ExportResponse, error) {
	name := fmt.Sprintf("tempo_export_%s.jsonl", time.Now().Format("20060102_150405"))
	path := filepath.Join(in.OutputDir, name)

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	encoder := json.NewEncoder(file)
	for _, entry := range in.Entries {
		rec := record{Topic: entry.Topic, Start: entry.Start, End: entry.End}
		start, startErr := time.Parse(time.RFC3339, entry.Start)
		end, endErr := time.Parse(time.RFC3339, entry.End)
		if startErr == nil && endErr == nil {
			rec.Hours = end.Sub(start).Hours()
		}
		if err := encoder.Encode(rec); err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := file.Close(); err != nil {
		return nil, err
	}
	return &exporterrpc.ExportResponse{Path: path, Count: int32(len(in.Entries))}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: exporterrpc.HandshakeConfig,
		Plugins:         exporterrpc.PluginMap(server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
