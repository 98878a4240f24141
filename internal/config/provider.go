/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileProvider implements Provider by reading a YAML file, then layering
// environment overrides on top.
type FileProvider struct {
	filename string

	// optional marks the implicit default file: absence falls back to
	// defaults instead of failing. An explicitly requested file must exist.
	optional bool
}

var _ Provider = (*FileProvider)(nil)

// NewFileProvider creates a provider for an explicitly requested file.
func NewFileProvider(filename string) *FileProvider {
	return &FileProvider{filename: filename}
}

// NewDefaultProvider creates a provider for the conventional stackcat.yaml
// in the working directory, which is allowed to be absent.
func NewDefaultProvider() *FileProvider {
	return &FileProvider{filename: DefaultFileName, optional: true}
}

// Load reads and resolves the configuration.
func (fp *FileProvider) Load(ctx context.Context) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(fp.filename)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file '%s': %w", fp.filename, err)
		}
	case errors.Is(err, fs.ErrNotExist) && fp.optional:
	default:
		return nil, fmt.Errorf("failed to read config file '%s': %w", fp.filename, err)
	}

	applyEnvOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration in '%s': %w", fp.filename, err)
	}

	return cfg, nil
}

// Environment overrides, highest precedence. STACKCAT_LOG is handled by
// the log package, not here.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("STACKCAT_CATALOGUE"); v != "" {
		cfg.CataloguePath = v
	}
	if v := os.Getenv("STACKCAT_REGION"); v != "" {
		cfg.Region = v
	}
	if v := os.Getenv("STACKCAT_PROFILE"); v != "" {
		cfg.Profile = v
	}
}

func validate(cfg *Config) error {
	if cfg.CataloguePath == "" {
		return errors.New("catalogue path must not be empty")
	}
	if cfg.Waiter.IntervalSeconds <= 0 {
		return fmt.Errorf("waiter interval_seconds must be positive, got %d", cfg.Waiter.IntervalSeconds)
	}
	if cfg.Waiter.MaxAttempts <= 0 {
		return fmt.Errorf("waiter max_attempts must be positive, got %d", cfg.Waiter.MaxAttempts)
	}
	return nil
}
