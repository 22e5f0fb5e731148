package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvforest/config"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestLoad_FileEnvFlags(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "lvforest.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
log:
  format: json
  level: debug
concurrency: 3
store:
  path: /tmp/parts
`), 0o600))

	t.Setenv("LVFOREST_CONCURRENCY", "5")
	t.Setenv("LVFOREST_TELEMETRY_ENDPOINT", "http://collector:4318")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-level", "info", "")
	fs.String("direction", "out", "")
	require.NoError(t, fs.Parse([]string{"--direction", "both"}))

	c, err := config.Load(file, fs)
	require.NoError(t, err)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, "debug", c.Log.Level, "unset flag does not override the file")
	assert.Equal(t, 5, c.Concurrency, "env beats file")
	assert.Equal(t, "both", c.Direction, "set flag wins")
	assert.Equal(t, "/tmp/parts", c.Store.Path)
	assert.Equal(t, "http://collector:4318", c.Telemetry.Endpoint)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("LVFOREST_CONCURRENCY", "0")
	_, err := config.Load("", nil)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}
