package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load merges the TOML file at path (if any) over the defaults, then applies
// BORROWX_* environment overrides. The result is not validated.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	// Missing .env is fine.
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	setStr(&cfg.LogLevel, "BORROWX_LOG_LEVEL")
	setStr(&cfg.Database.URL, "BORROWX_DATABASE_URL")
	setStr(&cfg.Report.ActivityPath, "BORROWX_REPORT_ACTIVITY_PATH")

	setFloat64(&cfg.Risk.LiquidationThreshold, "BORROWX_RISK_LIQUIDATION_THRESHOLD")
	setFloat64(&cfg.Risk.MaxLtv, "BORROWX_RISK_MAX_LTV")
	setFloat64(&cfg.Risk.FixedRatePremium, "BORROWX_RISK_FIXED_RATE_PREMIUM")
	setFloat64(&cfg.Risk.WalletBalance, "BORROWX_RISK_WALLET_BALANCE")
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setFloat64(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}
