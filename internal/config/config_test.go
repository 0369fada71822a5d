// Copyright (c) 2026 XVal Team
// XVal - Xbox 360 X value decoder
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	cfg "github.com/cooltrainer/xval/internal/config"
	"github.com/cooltrainer/xval/internal/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	testutil.IsolateConfig(t)

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	require.NoError(t, err)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, cfg.OutputText, got.Output)
	assert.Equal(t, "info", got.Log.Level)
	assert.NoError(t, got.Validate())
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	testutil.IsolateConfig(t)
	file := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(file, []byte("language: de\noutput: json\nlog:\n  level: debug\n"), 0o600))

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	require.NoError(t, err)
	assert.Equal(t, "de", got.Language)
	assert.Equal(t, cfg.OutputJSON, got.Output)
	assert.Equal(t, "debug", got.Log.Level)
}

func TestLoadConfig_UserConfigDir(t *testing.T) {
	home := testutil.IsolateConfig(t)
	dir := filepath.Join(home, "xval")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "xval.yaml"), []byte("output: yaml\n"), 0o600))

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	require.NoError(t, err)
	assert.Equal(t, cfg.OutputYAML, got.Output)
	assert.Equal(t, "en", got.Language)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	testutil.IsolateConfig(t)
	file := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(file, []byte("language: de\n"), 0o600))
	t.Setenv("XVAL_LANGUAGE", "en")
	t.Setenv("XVAL_LOG_LEVEL", "warn")

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	require.NoError(t, err)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, "warn", got.Log.Level)
}

func TestLoadConfig_FlagsOverrideEverything(t *testing.T) {
	testutil.IsolateConfig(t)
	t.Setenv("XVAL_OUTPUT", "yaml")

	cmd := &cobra.Command{}
	cmd.Flags().String("output", cfg.OutputText, "")
	cmd.Flags().String("log-level", "info", "")
	require.NoError(t, cmd.Flags().Set("output", "json"))
	require.NoError(t, cmd.Flags().Set("log-level", "error"))

	got, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	require.NoError(t, err)
	assert.Equal(t, cfg.OutputJSON, got.Output)
	assert.Equal(t, "error", got.Log.Level)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	testutil.IsolateConfig(t)
	file := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(file, []byte("language: [unterminated\n"), 0o600))

	_, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	assert.Error(t, err)
}

func TestValidate_RejectsUnknownOutput(t *testing.T) {
	c := cfg.Config{Output: "xml"}
	assert.ErrorContains(t, c.Validate(), "xml")
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	testutil.IsolateConfig(t)

	c := cfg.Config{Language: "de", Output: cfg.OutputYAML, Log: cfg.LogConfig{Level: "debug"}}
	path, err := cfg.WriteConfigFile(&c, false)
	require.NoError(t, err)

	want, err := cfg.GetConfigPath(false)
	require.NoError(t, err)
	assert.Equal(t, want, path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}
