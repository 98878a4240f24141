/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package config loads stackcat's runtime configuration: where the
// template catalogue lives, which AWS region and profile to use, and how
// patiently to wait for stack operations.
package config

import (
	"context"
	"time"
)

// DefaultFileName is the configuration file looked for in the working
// directory when no --config flag is given.
const DefaultFileName = "stackcat.yaml"

// Provider defines the interface for loading configuration
type Provider interface {
	Load(ctx context.Context) (*Config, error)
}

// Config is the resolved runtime configuration.
type Config struct {
	// CataloguePath is the root directory of the template catalogue. Each
	// immediate subdirectory is one resource type.
	CataloguePath string `yaml:"catalogue"`

	// Region and Profile select AWS credentials and endpoint. Empty values
	// defer to the AWS SDK's own resolution chain.
	Region  string `yaml:"region"`
	Profile string `yaml:"profile"`

	Waiter WaiterConfig `yaml:"waiter"`
}

// WaiterConfig controls the polling loop of blocking waits.
type WaiterConfig struct {
	IntervalSeconds int `yaml:"interval_seconds"`
	MaxAttempts     int `yaml:"max_attempts"`
}

// Interval returns the polling interval as a duration.
func (w WaiterConfig) Interval() time.Duration {
	return time.Duration(w.IntervalSeconds) * time.Second
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() *Config {
	return &Config{
		CataloguePath: "templates",
		Waiter: WaiterConfig{
			IntervalSeconds: 10,
			MaxAttempts:     60,
		},
	}
}
