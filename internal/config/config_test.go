package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())

	risk := cfg.Risk.Risk()
	assert.True(t, risk.LiquidationThreshold().Equal(decimal.RequireFromString("0.8")))
	assert.True(t, risk.MaxLtv().Equal(decimal.RequireFromString("0.75")))
	assert.True(t, risk.FixedRatePremium().Equal(decimal.RequireFromString("0.5")))
	assert.True(t, risk.WalletBalance().Equal(decimal.NewFromInt(10)))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"zero threshold", func(c *Config) { c.Risk.LiquidationThreshold = 0 }},
		{"threshold above one", func(c *Config) { c.Risk.LiquidationThreshold = 1.5 }},
		{"ltv above threshold", func(c *Config) { c.Risk.MaxLtv = 0.9 }},
		{"negative premium", func(c *Config) { c.Risk.FixedRatePremium = -1 }},
		{"empty wallet", func(c *Config) { c.Risk.WalletBalance = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "borrowx.toml")
	body := `
log_level = "debug"

[risk]
max_ltv = 0.7

[database]
url = "postgresql://localhost:5432/borrowx"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 0.7, cfg.Risk.MaxLtv)
	assert.Equal(t, 0.8, cfg.Risk.LiquidationThreshold)
	assert.Equal(t, "postgresql://localhost:5432/borrowx", cfg.Database.URL)
	require.NoError(t, cfg.Validate())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BORROWX_LOG_LEVEL", "warn")
	t.Setenv("BORROWX_RISK_WALLET_BALANCE", "25")
	t.Setenv("BORROWX_RISK_MAX_LTV", "not-a-number")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 25.0, cfg.Risk.WalletBalance)
	assert.Equal(t, 0.75, cfg.Risk.MaxLtv)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
