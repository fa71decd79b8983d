// Package config loads the CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/smooth"
	"github.com/gogpu/smooth/internal/checkpoint"
	"github.com/gogpu/smooth/internal/imageio"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("config: invalid")

// Executor names.
const (
	ExecutorScoped = "scoped"
	ExecutorPool   = "pool"
)

// Config holds all CLI settings.
type Config struct {
	// Workers is the row-range count of the parallel engine.
	Workers int `yaml:"workers"`

	// Executor selects how parallel tasks run: "scoped" spawns goroutines
	// per pass, "pool" reuses a persistent worker pool.
	Executor string `yaml:"executor"`

	Checkpoint CheckpointConfig `yaml:"checkpoint"`

	Log LogConfig `yaml:"log"`
}

// CheckpointConfig configures periodic persistence in the average command.
type CheckpointConfig struct {
	Enabled bool   `yaml:"enabled"`
	Every   int    `yaml:"every"`
	Dir     string `yaml:"dir"`
	Format  string `yaml:"format"`
}

// LogConfig configures the stderr logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Workers:  smooth.DefaultWorkers,
		Executor: ExecutorScoped,
		Checkpoint: CheckpointConfig{
			Enabled: false,
			Every:   checkpoint.DefaultEvery,
			Dir:     ".",
			Format:  string(imageio.FormatPNG),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the YAML file at path on top of Default. Keys absent from
// the file keep their default values. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if c.Workers < 0 || c.Workers > smooth.MaxWorkers {
		return fmt.Errorf("%w: workers must be in [0, %d], got %d", ErrInvalidConfig, smooth.MaxWorkers, c.Workers)
	}
	switch c.Executor {
	case ExecutorScoped, ExecutorPool:
	default:
		return fmt.Errorf("%w: unknown executor %q", ErrInvalidConfig, c.Executor)
	}
	if c.Checkpoint.Every <= 0 {
		return fmt.Errorf("%w: checkpoint.every must be > 0, got %d", ErrInvalidConfig, c.Checkpoint.Every)
	}
	if _, err := c.CheckpointFormat(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// CheckpointFormat returns the encodable image format for checkpoints.
func (c *Config) CheckpointFormat() (imageio.Format, error) {
	f, err := imageio.ParseFormat(c.Checkpoint.Format)
	if err != nil || !f.CanEncode() {
		return "", fmt.Errorf("%w: checkpoint.format %q cannot be written", ErrInvalidConfig, c.Checkpoint.Format)
	}
	return f, nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(c.Log.Level))); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	return level, nil
}
