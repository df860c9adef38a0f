// Package config loads redist run settings from a YAML or TOML file, overlays
// REDIST_* environment variables and validates the result.
//
// Precedence, lowest first: Default(), the file (format chosen by extension),
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/redist/benchmark"
	"github.com/katalvlaran/redist/distance"
	"github.com/katalvlaran/redist/internal/parallel"
	"github.com/katalvlaran/redist/precinct"
)

var (
	// ErrFormat indicates a config file extension other than .yaml, .yml or .toml.
	ErrFormat = errors.New("config: unsupported file format")

	// ErrUnknownKey indicates a key in the file that maps to no field.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalid indicates a configuration that failed validation.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config is the complete run configuration.
type Config struct {
	Attributes Attributes `yaml:"attributes" toml:"attributes"`
	Batch      Batch      `yaml:"batch" toml:"batch"`
	Towers     Towers     `yaml:"towers" toml:"towers"`
	Logging    Logging    `yaml:"logging" toml:"logging"`
	Metrics    Metrics    `yaml:"metrics" toml:"metrics"`
}

// Attributes names the node attributes holding votes and population.
type Attributes struct {
	Dem        string `yaml:"dem" toml:"dem" validate:"required"`
	Rep        string `yaml:"rep" toml:"rep" validate:"required,nefield=Dem"`
	Population string `yaml:"population" toml:"population"`
}

// Batch controls parallel scoring and distance runs.
type Batch struct {
	Workers  int    `yaml:"workers" toml:"workers" validate:"min=0"`
	Mode     string `yaml:"mode" toml:"mode" validate:"oneof=fail_fast best_effort"`
	Metric   string `yaml:"metric" toml:"metric" validate:"oneof=hamming entropy"`
	Rounding string `yaml:"rounding" toml:"rounding" validate:"oneof=half_even half_up"`
}

// Towers controls tower generation.
type Towers struct {
	Count      int   `yaml:"count" toml:"count" validate:"min=1"`
	Oversample int   `yaml:"oversample" toml:"oversample" validate:"min=1"`
	Districts  int   `yaml:"districts" toml:"districts" validate:"min=0"`
	Seed       int64 `yaml:"seed" toml:"seed"`
}

// Logging configures the zap logger and its optional rotated file sink.
type Logging struct {
	Level      string `yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" toml:"format" validate:"oneof=json console"`
	File       string `yaml:"file" toml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" toml:"max_size_mb" validate:"min=0"`
	MaxAgeDays int    `yaml:"max_age_days" toml:"max_age_days" validate:"min=0"`
}

// Metrics configures the Prometheus endpoint. An empty Addr disables it.
type Metrics struct {
	Addr string `yaml:"addr" toml:"addr" validate:"omitempty,hostname_port"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Attributes: Attributes{Dem: precinct.DefaultDemAttr, Rep: precinct.DefaultRepAttr},
		Batch: Batch{
			Mode:     parallel.FailFast.String(),
			Metric:   distance.MetricHamming.String(),
			Rounding: benchmark.DefaultThirdianRounding.String(),
		},
		Towers:  Towers{Count: 3, Oversample: 5},
		Logging: Logging{Level: "info", Format: "json", MaxSizeMB: 100, MaxAgeDays: 28},
	}
}

// Load builds a Config from defaults, the optional file at path, and the
// environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// decodeFile overlays the file onto cfg. Unknown keys are rejected in both
// formats so typos do not silently fall back to defaults.
func decodeFile(path string, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".toml":
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return fmt.Errorf("config: parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("config: %s: %q: %w", path, undecoded[0].String(), ErrUnknownKey)
		}
	default:
		return fmt.Errorf("config: %s: %w", path, ErrFormat)
	}

	return nil
}

// RequiredColumns lists the node attributes that must be numeric wherever
// present: the vote columns and, when configured, population.
func (c Config) RequiredColumns() []string {
	cols := []string{c.Attributes.Dem, c.Attributes.Rep}
	if c.Attributes.Population != "" {
		cols = append(cols, c.Attributes.Population)
	}

	return cols
}

// PrecinctOptions maps Attributes onto precinct.NewGraph options.
func (c Config) PrecinctOptions() []precinct.Option {
	return []precinct.Option{precinct.WithAttributeNames(precinct.AttributeNames{
		Dem:        c.Attributes.Dem,
		Rep:        c.Attributes.Rep,
		Population: c.Attributes.Population,
	})}
}

// Metric returns the configured distance metric.
func (c Config) Metric() (distance.Metric, error) { return distance.ParseMetric(c.Batch.Metric) }

// Mode returns the configured batch failure policy.
func (c Config) Mode() (parallel.Mode, error) { return parallel.ParseMode(c.Batch.Mode) }

// Rounding returns the configured mean-thirdian rounding.
func (c Config) Rounding() (benchmark.Rounding, error) {
	return benchmark.ParseRounding(c.Batch.Rounding)
}

// Run returns the parallel settings for batch entry points.
func (c Config) Run() (parallel.Config, error) {
	m, err := c.Mode()
	if err != nil {
		return parallel.Config{}, err
	}

	return parallel.Config{Workers: c.Batch.Workers, Mode: m}, nil
}
