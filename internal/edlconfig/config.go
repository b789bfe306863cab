// Package edlconfig loads the run options for the edl CLI. The EDL engine
// itself takes no configuration beyond what RunScript already accepts; this
// package exists for the CLI shell around it.
package edlconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// OutputFormat selects how a run's result is rendered.
type OutputFormat string

const (
	OutputHuman   OutputFormat = "human"
	OutputJSON    OutputFormat = "json"
	OutputFullEnv OutputFormat = "envelope"
)

// Config is the edl CLI's run configuration, loaded from (in ascending
// precedence) defaults, an optional config file, environment variables
// prefixed EDL_, and command-line flags bound by cmd/edl.
type Config struct {
	WorkingDir   string       `mapstructure:"working_dir"`
	ExpandHome   bool         `mapstructure:"expand_home"`
	OutputFormat OutputFormat `mapstructure:"output_format"`
}

// Default returns the configuration used when no file, environment
// variable, or flag overrides a field.
func Default() Config {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return Config{
		WorkingDir:   wd,
		ExpandHome:   true,
		OutputFormat: OutputHuman,
	}
}

// Load reads edl's configuration: a viper instance seeded with defaults,
// optionally merging a config file at configPath (if non-empty and
// present), then environment variables under the EDL_ prefix.
func Load(configPath string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetDefault("working_dir", cfg.WorkingDir)
	v.SetDefault("expand_home", cfg.ExpandHome)
	v.SetDefault("output_format", string(cfg.OutputFormat))

	v.SetEnvPrefix("EDL")
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("reading config %s: %w", configPath, err)
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.ExpandHome {
		if expanded, err := expandHome(cfg.WorkingDir); err == nil {
			cfg.WorkingDir = expanded
		}
	}

	return cfg, nil
}

func expandHome(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path, err
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
