// Package config loads the dashboard settings: risk parameters, the optional
// quote database and logging.
package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Config struct {
	LogLevel string         `toml:"log_level"`
	Risk     RiskConfig     `toml:"risk"`
	Database DatabaseConfig `toml:"database"`
	Report   ReportConfig   `toml:"report"`
}

// RiskConfig is the file form of Risk. Ratios are fractions, not percentages.
type RiskConfig struct {
	LiquidationThreshold float64 `toml:"liquidation_threshold"`
	MaxLtv               float64 `toml:"max_ltv"`
	FixedRatePremium     float64 `toml:"fixed_rate_premium"`
	WalletBalance        float64 `toml:"wallet_balance"`
}

type DatabaseConfig struct {
	URL string `toml:"url"`
}

type ReportConfig struct {
	ActivityPath string `toml:"activity_path"`
}

// Risk carries the parameters the session feeds into the calculator.
type Risk struct {
	liquidationThreshold decimal.Decimal
	maxLtv               decimal.Decimal
	fixedRatePremium     decimal.Decimal
	walletBalance        decimal.Decimal
}

func NewRisk(liquidationThreshold, maxLtv, fixedRatePremium, walletBalance decimal.Decimal) Risk {
	return Risk{
		liquidationThreshold: liquidationThreshold,
		maxLtv:               maxLtv,
		fixedRatePremium:     fixedRatePremium,
		walletBalance:        walletBalance,
	}
}

func (r Risk) LiquidationThreshold() decimal.Decimal { return r.liquidationThreshold }
func (r Risk) MaxLtv() decimal.Decimal               { return r.maxLtv }
func (r Risk) FixedRatePremium() decimal.Decimal     { return r.fixedRatePremium }
func (r Risk) WalletBalance() decimal.Decimal        { return r.walletBalance }

func (c RiskConfig) Risk() Risk {
	return NewRisk(
		decimal.NewFromFloat(c.LiquidationThreshold),
		decimal.NewFromFloat(c.MaxLtv),
		decimal.NewFromFloat(c.FixedRatePremium),
		decimal.NewFromFloat(c.WalletBalance),
	)
}

func Defaults() Config {
	return Config{
		LogLevel: "info",
		Risk: RiskConfig{
			LiquidationThreshold: 0.8,
			MaxLtv:               0.75,
			FixedRatePremium:     0.5,
			WalletBalance:        10,
		},
	}
}

func DefaultRisk() Risk {
	return Defaults().Risk.Risk()
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []string

	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, fmt.Sprintf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel))
	}
	if c.Risk.LiquidationThreshold <= 0 || c.Risk.LiquidationThreshold > 1 {
		errs = append(errs, fmt.Sprintf("risk.liquidation_threshold %v must be in (0, 1]", c.Risk.LiquidationThreshold))
	}
	if c.Risk.MaxLtv <= 0 || c.Risk.MaxLtv > 1 {
		errs = append(errs, fmt.Sprintf("risk.max_ltv %v must be in (0, 1]", c.Risk.MaxLtv))
	}
	if c.Risk.MaxLtv > c.Risk.LiquidationThreshold {
		errs = append(errs, "risk.max_ltv must not exceed risk.liquidation_threshold")
	}
	if c.Risk.FixedRatePremium < 0 {
		errs = append(errs, "risk.fixed_rate_premium must not be negative")
	}
	if c.Risk.WalletBalance <= 0 {
		errs = append(errs, "risk.wallet_balance must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
