package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "assign", cfg.Hook.Name)
	assert.Equal(t, "mahalo", cfg.Hook.Module)
	assert.Equal(t, "Component", cfg.Sentinels.Component.Name)
	assert.Equal(t, "mahalo/mahalo.ts", cfg.Sentinels.Component.ModulePath)
	assert.Equal(t, "Behavior", cfg.Sentinels.Behavior.Name)
	assert.Equal(t, "Route", cfg.Sentinels.Route.Name)
	assert.Equal(t, "mahalo/route.ts", cfg.Sentinels.Route.ModulePath)
	assert.Equal(t, 8, cfg.Cache.Capacity)
	assert.True(t, cfg.Diagnostics)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	yml := `
hook:
  name: track
  module: mahalo/core
cache:
  capacity: 32
diagnostics: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mahalo.yml"), []byte(yml), 0644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "track", cfg.Hook.Name)
	assert.Equal(t, "mahalo/core", cfg.Hook.Module)
	assert.Equal(t, 32, cfg.Cache.Capacity)
	assert.False(t, cfg.Diagnostics)
	// Untouched sections keep their defaults.
	assert.Equal(t, "Component", cfg.Sentinels.Component.Name)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mahalo.yml"), []byte("hook: [unclosed"), 0644))
	chdir(t, dir)

	_, err := Load()
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestPipelineOptions(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	cfg.Hook.Name = "observe"
	cfg.Diagnostics = false

	opts := cfg.PipelineOptions()
	assert.Equal(t, "observe", opts.HookName)
	assert.Equal(t, "mahalo", opts.HookModule)
	assert.False(t, opts.CheckDiagnostics)
	assert.Equal(t, "Component", opts.Sentinels.Component.Name)
	assert.Equal(t, "mahalo/mahalo.ts", opts.Sentinels.Component.ModulePath)
	assert.Equal(t, "Behavior", opts.Sentinels.Behavior.Name)
	assert.Equal(t, "Route", opts.Sentinels.Route.Name)
}
