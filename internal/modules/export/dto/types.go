package dto

// ExportInput selects the target: the built-in CSV file when Plugin is
// empty, otherwise the named exporter plugin.
type ExportInput struct {
	Plugin string
}

type ExportOutput struct {
	Path  string
	Count int
}

type ExporterOutput struct {
	Name    string
	Version string
	Binary  string
	Enabled bool
}
