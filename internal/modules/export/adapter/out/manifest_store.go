package out

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tempo/internal/modules/export/domain"
	exportout "tempo/internal/modules/export/port/out"
)

// YAMLManifestStore reads exporter declarations from plugins.yaml in the
// plugin directory. A missing file means no exporters are installed.
type YAMLManifestStore struct {
	baseDir string
	path    string
}

func NewYAMLManifestStore(pluginDir string) exportout.ManifestStore {
	return &YAMLManifestStore{baseDir: pluginDir, path: filepath.Join(pluginDir, "plugins.yaml")}
}

func (s *YAMLManifestStore) Load(_ context.Context) ([]domain.Manifest, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Manifest{}, nil
		}
		return nil, fmt.Errorf("read exporter manifests: %w", err)
	}

	var manifests []domain.Manifest
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&manifests); err != nil {
		return nil, fmt.Errorf("decode exporter manifests: %w", err)
	}
	for i := range manifests {
		if manifests[i].Binary != "" && !filepath.IsAbs(manifests[i].Binary) {
			manifests[i].Binary = filepath.Clean(filepath.Join(s.baseDir, manifests[i].Binary))
		}
	}
	return manifests, nil
}
