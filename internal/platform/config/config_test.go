package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, []string{"MOUSSA", "PATHE"}, cfg.Drivers)
	assert.Equal(t, "CFA", cfg.Currency)
	assert.Equal(t, 2, cfg.SheetHeaderRow)
	assert.Equal(t, 4, cfg.DelimitedHeaderRow)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("DRIVERS", "MOUSSA, PATHE ,IBRAHIMA")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, []string{"MOUSSA", "PATHE", "IBRAHIMA"}, cfg.Drivers)
	assert.Equal(t, 0, cfg.RateLimitPerMinute)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "driverpay.yaml")
	require.NoError(t, os.WriteFile(path, []byte("currency: XOF\ndrivers:\n  - AWA\n  - MOUSSA\nsheet_header_row: 3\n"), 0o600))

	cfg, err := load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "XOF", cfg.Currency)
	assert.Equal(t, []string{"AWA", "MOUSSA"}, cfg.Drivers)
	assert.Equal(t, 3, cfg.SheetHeaderRow)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base, err := load(viper.New(), "")
	require.NoError(t, err)

	prod := base
	prod.Environment = "production"
	assert.Error(t, prod.Validate())
	prod.JWTSecret = "s3cret"
	assert.NoError(t, prod.Validate())

	small := base
	small.MaxBodyBytes = 10
	assert.Error(t, small.Validate())

	header := base
	header.DelimitedHeaderRow = 0
	assert.Error(t, header.Validate())

	level := base
	level.LogLevel = "trace"
	assert.Error(t, level.Validate())
}
