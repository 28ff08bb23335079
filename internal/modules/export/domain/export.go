package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrExporterNotFound = errors.New("exporter not found")
	ErrExporterDisabled = errors.New("exporter is disabled")
	ErrExporterTimeout  = errors.New("exporter timeout")
)

// Entry is one closed session handed to an export target.
type Entry struct {
	Topic string
	Start time.Time
	End   time.Time
}

func (e Entry) Hours() float64 {
	return e.End.Sub(e.Start).Hours()
}

type Result struct {
	Path  string
	Count int
}

type Metadata struct {
	Name    string
	Version string
}

// Manifest declares one exporter plugin binary.
type Manifest struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Binary  string `yaml:"binary"`
	Enabled bool   `yaml:"enabled"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("exporter name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("exporter version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("exporter binary path is required")
	}
	return nil
}
