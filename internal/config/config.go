package config

import (
	"errors"
	"fmt"

	"github.com/quantmind-br/configdoc/internal/table"
)

// ErrInvalidConfig indicates a configuration value cannot be used
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the application configuration
type Config struct {
	Manifest ManifestConfig `mapstructure:"manifest" yaml:"manifest"`
	Document DocumentConfig `mapstructure:"document" yaml:"document"`
	Render   RenderConfig   `mapstructure:"render" yaml:"render"`
	GitRoot  bool           `mapstructure:"git_root" yaml:"git_root"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// ManifestConfig describes where the property schema comes from
type ManifestConfig struct {
	Path           string   `mapstructure:"path" yaml:"path"`
	PropertiesPath []string `mapstructure:"properties_path" yaml:"properties_path"`
}

// DocumentConfig describes the file the table is spliced into
type DocumentConfig struct {
	Path        string `mapstructure:"path" yaml:"path"`
	StartMarker string `mapstructure:"start_marker" yaml:"start_marker"`
	EndMarker   string `mapstructure:"end_marker" yaml:"end_marker"`
}

// RenderConfig contains table rendering settings
type RenderConfig struct {
	Style string `mapstructure:"style" yaml:"style"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate fills blank values with defaults and rejects unusable ones
func (c *Config) Validate() error {
	if c.Manifest.Path == "" {
		c.Manifest.Path = DefaultManifestPath
	}
	if len(c.Manifest.PropertiesPath) == 0 {
		c.Manifest.PropertiesPath = append([]string(nil), DefaultPropertiesPath...)
	}
	for i, seg := range c.Manifest.PropertiesPath {
		if seg == "" {
			return fmt.Errorf("%w: manifest.properties_path segment %d is empty", ErrInvalidConfig, i)
		}
	}

	if c.Document.Path == "" {
		c.Document.Path = DefaultDocumentPath
	}
	if c.Document.StartMarker == "" {
		c.Document.StartMarker = DefaultStartMarker
	}
	if c.Document.EndMarker == "" {
		c.Document.EndMarker = DefaultEndMarker
	}
	if c.Document.StartMarker == c.Document.EndMarker {
		return fmt.Errorf("%w: start and end markers must differ", ErrInvalidConfig)
	}

	style, err := table.ParseStyle(c.Render.Style)
	if err != nil {
		return fmt.Errorf("%w: render.style: %w", ErrInvalidConfig, err)
	}
	c.Render.Style = string(style)

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}
