package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DataDir       string
	DBPath        string
	ExportDir     string
	PluginDir     string
	DefaultTopic  string
	Notifications bool
	LogLevel      string
}

// fileConfig is the optional config.yaml inside the data directory. Every
// field overrides the built-in default when present.
type fileConfig struct {
	Database      string `yaml:"database"`
	ExportDir     string `yaml:"export_dir"`
	DefaultTopic  string `yaml:"default_topic"`
	Notifications *bool  `yaml:"notifications"`
	LogLevel      string `yaml:"log_level"`
}

// New resolves the effective configuration for dataDir. An empty dataDir
// falls back to <user config dir>/tempo.
func New(dataDir string) (Config, error) {
	if dataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve user config dir: %w", err)
		}
		dataDir = filepath.Join(base, "tempo")
	}
	cfg := Config{
		DataDir:      dataDir,
		DBPath:       filepath.Join(dataDir, "tempo.db"),
		ExportDir:    ".",
		PluginDir:    filepath.Join(dataDir, "plugins"),
		DefaultTopic: "default",
		LogLevel:     "disabled",
	}

	raw, err := os.ReadFile(filepath.Join(dataDir, "config.yaml"))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if fc.Database != "" {
		cfg.DBPath = fc.Database
	}
	if fc.ExportDir != "" {
		cfg.ExportDir = fc.ExportDir
	}
	if fc.DefaultTopic != "" {
		cfg.DefaultTopic = fc.DefaultTopic
	}
	if fc.Notifications != nil {
		cfg.Notifications = *fc.Notifications
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	return cfg, nil
}
