// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/AleutianAI/symphony/pkg/logging"
	"github.com/AleutianAI/symphony/services/search"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid engine config")

// Config contains all engine configuration. It can be loaded from a YAML or
// JSON file and overridden from the environment.
//
// Thread Safety: Safe to read concurrently. Not safe to modify after the
// engine is created.
type Config struct {
	// Search selects the strategy used by Solve.
	Search SearchConfig `json:"search" yaml:"search"`

	// CSP bounds constraint problems handed to SolveCSP.
	CSP CSPConfig `json:"csp" yaml:"csp"`

	// Compare controls concurrent strategy comparison.
	Compare CompareConfig `json:"compare" yaml:"compare"`

	// Observability contains logging, tracing and metrics settings.
	Observability ObservabilityConfig `json:"observability" yaml:"observability"`
}

// SearchConfig selects a search strategy.
type SearchConfig struct {
	Algorithm string `json:"algorithm" yaml:"algorithm" validate:"required,algorithm"`
	BeamWidth int    `json:"beam_width" yaml:"beam_width" validate:"gte=0"`
}

// CSPConfig bounds CSP solving. The backtracking solver has no deadline, so
// problem size is the only available limit.
type CSPConfig struct {
	// MaxVariables rejects larger CSPs before solving. 0 means unlimited.
	MaxVariables int `json:"max_variables" yaml:"max_variables" validate:"gte=0"`
}

// CompareConfig controls Compare.
type CompareConfig struct {
	MaxConcurrency int `json:"max_concurrency" yaml:"max_concurrency" validate:"gte=1,lte=64"`
}

// ObservabilityConfig contains observability settings.
type ObservabilityConfig struct {
	TracingEnabled bool   `json:"tracing_enabled" yaml:"tracing_enabled"`
	MetricsEnabled bool   `json:"metrics_enabled" yaml:"metrics_enabled"`
	LogLevel       string `json:"log_level" yaml:"log_level" validate:"loglevel"`
	LogJSON        bool   `json:"log_json" yaml:"log_json"`
	ServiceName    string `json:"service_name" yaml:"service_name" validate:"required"`
}

// configValidate is the validator instance for engine configuration.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	_ = configValidate.RegisterValidation("algorithm", validateAlgorithm)
	_ = configValidate.RegisterValidation("loglevel", validateLogLevel)
}

func validateAlgorithm(fl validator.FieldLevel) bool {
	return search.Algorithm(fl.Field().String()).Valid()
}

func validateLogLevel(fl validator.FieldLevel) bool {
	_, err := logging.ParseLevel(fl.Field().String())
	return err == nil
}

// DefaultConfig returns the default configuration.
//
// Outputs:
//   - Config: A* search, unlimited CSP size, four concurrent comparisons.
func DefaultConfig() Config {
	return Config{
		Search: SearchConfig{
			Algorithm: string(search.AStar),
		},
		Compare: CompareConfig{
			MaxConcurrency: 4,
		},
		Observability: ObservabilityConfig{
			TracingEnabled: true,
			MetricsEnabled: true,
			LogLevel:       "info",
			ServiceName:    "symphony",
		},
	}
}

// LoadConfig loads configuration with priority: env > file > defaults.
//
// Inputs:
//   - configPath: Path to YAML/JSON config file (optional, can be empty).
//
// Outputs:
//   - Config: Merged configuration.
//   - error: Non-nil if the file exists but is invalid, or the merged
//     configuration fails validation.
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, &config); err != nil {
			return config, fmt.Errorf("load config file: %w", err)
		}
	}

	loadConfigFromEnv(&config)

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

func loadConfigFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	// Try YAML first, then JSON
	if err := yaml.Unmarshal(data, config); err != nil {
		if jsonErr := json.Unmarshal(data, config); jsonErr != nil {
			return fmt.Errorf("parse config (tried YAML and JSON): YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}
	return nil
}

func loadConfigFromEnv(config *Config) {
	if v := os.Getenv("SYMPHONY_ALGORITHM"); v != "" {
		config.Search.Algorithm = v
	}
	envInt("SYMPHONY_BEAM_WIDTH", &config.Search.BeamWidth)
	envInt("SYMPHONY_CSP_MAX_VARIABLES", &config.CSP.MaxVariables)
	envInt("SYMPHONY_MAX_CONCURRENCY", &config.Compare.MaxConcurrency)

	// Observability
	if v := os.Getenv("SYMPHONY_TRACING_ENABLED"); v != "" {
		config.Observability.TracingEnabled = v == "true" || v == "1"
	}
	if v := os.Getenv("SYMPHONY_METRICS_ENABLED"); v != "" {
		config.Observability.MetricsEnabled = v == "true" || v == "1"
	}
	if v := os.Getenv("SYMPHONY_LOG_LEVEL"); v != "" {
		config.Observability.LogLevel = v
	}
	if v := os.Getenv("SYMPHONY_LOG_JSON"); v != "" {
		config.Observability.LogJSON = v == "true" || v == "1"
	}
}

// envInt overwrites dst with the integer in env var name. A malformed value
// is logged and ignored.
func envInt(name string, dst *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("ignoring malformed integer in environment",
			slog.String("variable", name),
			slog.String("value", v),
		)
		return
	}
	*dst = i
}

// Validate checks that the configuration is valid.
//
// Outputs:
//   - error: Wraps ErrInvalidConfig if the configuration is invalid.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if search.Algorithm(c.Search.Algorithm) == search.Beam && c.Search.BeamWidth < 1 {
		return fmt.Errorf("%w: beam_width must be >= 1 for %s", ErrInvalidConfig, search.Beam)
	}
	return nil
}
