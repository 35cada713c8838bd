package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	d := Defaults()
	require.Equal(t, 1, d.Workers)
	require.Equal(t, 10000, d.MaxDecisions)
	require.Equal(t, "info", d.LogLevel)
}

func TestLoadWithoutConfigFileUsesDefaults(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg, err := Load("", flags)
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "podem.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 4\nlog-level: debug\n"), 0o644))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg, err := Load(path, flags)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 10000, cfg.MaxDecisions) // untouched default
}

func TestLoadFlagOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "podem.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 4\n"), 0o644))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("workers", 1, "")
	require.NoError(t, flags.Set("workers", "8"))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Workers)
}
