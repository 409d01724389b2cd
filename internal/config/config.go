// Package config loads the CLI configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the file looked up when no --config flag is given.
const DefaultPath = "aoc.yaml"

// Config holds every tunable of the CLI.
type Config struct {
	// InputDir holds puzzle inputs as <year>/<day>.txt.
	InputDir string `yaml:"input_dir" validate:"required"`
	// AnswersFile maps challenge IDs to known answers for --check.
	AnswersFile string `yaml:"answers_file" validate:"required"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
	// Color enables styled output when stdout is a terminal.
	Color bool `yaml:"color"`
	// Workers bounds how many challenges solve --all runs at once.
	Workers int `yaml:"workers" validate:"min=1,max=64"`
	// Timeout bounds a single solve; zero disables it.
	Timeout time.Duration `yaml:"timeout" validate:"min=0"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		InputDir:    "inputs",
		AnswersFile: "answers.yaml",
		LogLevel:    "warn",
		Color:       true,
		Workers:     4,
		Timeout:     time.Minute,
	}
}

// Load reads path over the defaults. A missing file is not an error unless
// mustExist is set. The result is validated.
func Load(path string, mustExist bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !mustExist:
		err = cfg.Validate()
		return cfg, err
	case err != nil:
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	err = cfg.Validate()
	return cfg, err
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate lower-cases LogLevel and checks field constraints.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(c.LogLevel)
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// Level converts LogLevel into a slog.Level; unknown values map to warn.
func (c Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	}
	return slog.LevelWarn
}
