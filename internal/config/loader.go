package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from file, environment, and defaults into v.
// Flags bound to v take precedence over both. A nil v starts from a fresh
// instance with no flag bindings.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	return load(v, configFile)
}

func load(v *viper.Viper, configFile string) (*Config, error) {
	setDefaults(v)

	// Config file settings
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// Environment variables (CONFIGDOC_*)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	// Manifest defaults
	v.SetDefault("manifest.path", DefaultManifestPath)
	v.SetDefault("manifest.properties_path", DefaultPropertiesPath)

	// Document defaults
	v.SetDefault("document.path", DefaultDocumentPath)
	v.SetDefault("document.start_marker", DefaultStartMarker)
	v.SetDefault("document.end_marker", DefaultEndMarker)

	// Rendering defaults
	v.SetDefault("render.style", DefaultStyle)

	v.SetDefault("git_root", false)

	// Logging defaults
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
