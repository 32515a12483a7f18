package calculator

import "github.com/shopspring/decimal"

type RiskTier string

const (
	Healthy         RiskTier = "Healthy"
	Moderate        RiskTier = "Moderate"
	Risky           RiskTier = "Risky"
	LiquidationRisk RiskTier = "Liquidation Risk"
)

type Alert string

const (
	AlertNone     Alert = "NONE"
	AlertWarning  Alert = "WARNING"
	AlertCritical Alert = "CRITICAL"
)

var (
	healthyFloor  = decimal.NewFromInt(2)
	moderateFloor = decimal.RequireFromString("1.5")
	riskyFloor    = decimal.RequireFromString("1.1")
	gaugeCeiling  = decimal.NewFromInt(3)
	hundred       = decimal.NewFromInt(100)
)

// RiskTierFor buckets a health factor. Each tier excludes its lower bound,
// so exactly 2.0 is Moderate and exactly 1.1 is LiquidationRisk.
func RiskTierFor(hf HealthFactor) RiskTier {
	switch {
	case hf.GreaterThan(healthyFloor):
		return Healthy
	case hf.GreaterThan(moderateFloor):
		return Moderate
	case hf.GreaterThan(riskyFloor):
		return Risky
	default:
		return LiquidationRisk
	}
}

func AlertFor(hf HealthFactor) Alert {
	switch {
	case hf.LessThan(riskyFloor):
		return AlertCritical
	case hf.LessThan(moderateFloor):
		return AlertWarning
	default:
		return AlertNone
	}
}

// HealthGauge maps a health factor onto a 0-100 scale where 3.0 and above is full.
func HealthGauge(hf HealthFactor) decimal.Decimal {
	if hf.IsInfinite() {
		return hundred
	}
	g := hf.Value().Div(gaugeCeiling).Mul(hundred)
	if g.GreaterThan(hundred) {
		return hundred
	}
	if g.IsNegative() {
		return decimal.Zero
	}
	return g
}
