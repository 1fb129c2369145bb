package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunnerConfig holds configuration for the gatorsched runner.
type RunnerConfig struct {
	LogLevel     string `yaml:"log_level"`     // debug, info, warn, error
	LogFormat    string `yaml:"log_format"`    // text, json
	LogFile      string `yaml:"log_file"`      // optional rotating log file; empty = stderr
	OutputSuffix string `yaml:"output_suffix"` // appended to the input path after stripping its extension
}

// DefaultRunnerConfig returns sensible defaults.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		LogLevel:     "info",
		LogFormat:    "text",
		OutputSuffix: "_output_file.txt",
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.OutputSuffix == "" {
		cfg.OutputSuffix = DefaultRunnerConfig().OutputSuffix
	}
	return cfg, nil
}
