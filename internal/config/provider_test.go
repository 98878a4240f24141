/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stackcat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
catalogue: /srv/templates
region: eu-west-2
profile: platform
waiter:
  interval_seconds: 5
  max_attempts: 120
`)

	cfg, err := NewFileProvider(path).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/srv/templates", cfg.CataloguePath)
	assert.Equal(t, "eu-west-2", cfg.Region)
	assert.Equal(t, "platform", cfg.Profile)
	assert.Equal(t, 5*time.Second, cfg.Waiter.Interval())
	assert.Equal(t, 120, cfg.Waiter.MaxAttempts)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "region: us-east-1\n")

	cfg, err := NewFileProvider(path).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "templates", cfg.CataloguePath)
	assert.Equal(t, 10*time.Second, cfg.Waiter.Interval())
	assert.Equal(t, 60, cfg.Waiter.MaxAttempts)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := NewFileProvider(path).Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_DefaultFileMayBeAbsent(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := NewDefaultProvider().Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "catalogue: [unclosed\n")

	_, err := NewFileProvider(path).Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoad_EnvOverridesWin(t *testing.T) {
	path := writeConfig(t, "catalogue: /srv/templates\nregion: eu-west-2\n")
	t.Setenv("STACKCAT_CATALOGUE", "/mnt/catalogue")
	t.Setenv("STACKCAT_REGION", "ap-southeast-2")
	t.Setenv("STACKCAT_PROFILE", "ops")

	cfg, err := NewFileProvider(path).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/mnt/catalogue", cfg.CataloguePath)
	assert.Equal(t, "ap-southeast-2", cfg.Region)
	assert.Equal(t, "ops", cfg.Profile)
}

func TestLoad_RejectsNonPositiveWaiter(t *testing.T) {
	path := writeConfig(t, "waiter:\n  interval_seconds: 0\n")

	_, err := NewFileProvider(path).Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "interval_seconds must be positive")
}
