package config

import (
	"github.com/quantmind-br/configdoc/internal/manifest"
	"github.com/quantmind-br/configdoc/internal/output"
	"github.com/quantmind-br/configdoc/internal/table"
)

// Default values
const (
	// Input and output files, relative to the working directory
	DefaultManifestPath = "package.json"
	DefaultDocumentPath = "README.md"

	// Region markers
	DefaultStartMarker = output.DefaultStartMarker
	DefaultEndMarker   = output.DefaultEndMarker

	// Rendering defaults
	DefaultStyle = string(table.StyleLegacy)

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"

	// Config file looked up in the working directory
	ConfigFileName = ".configdoc"
	EnvPrefix      = "CONFIGDOC"
)

// DefaultPropertiesPath is the manifest path of the properties mapping
var DefaultPropertiesPath = manifest.DefaultPropertiesPath

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Manifest: ManifestConfig{
			Path:           DefaultManifestPath,
			PropertiesPath: append([]string(nil), DefaultPropertiesPath...),
		},
		Document: DocumentConfig{
			Path:        DefaultDocumentPath,
			StartMarker: DefaultStartMarker,
			EndMarker:   DefaultEndMarker,
		},
		Render: RenderConfig{
			Style: DefaultStyle,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
