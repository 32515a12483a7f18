package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRiskTierFor(t *testing.T) {
	tests := []struct {
		name string
		hf   HealthFactor
		want RiskTier
	}{
		{"no debt", NoDebt, Healthy},
		{"just above two", NewHealthFactor(d("2.01")), Healthy},
		{"exactly two", NewHealthFactor(d("2.0")), Moderate},
		{"just above 1.5", NewHealthFactor(d("1.51")), Moderate},
		{"exactly 1.5", NewHealthFactor(d("1.5")), Risky},
		{"just above 1.1", NewHealthFactor(d("1.11")), Risky},
		{"exactly 1.1", NewHealthFactor(d("1.1")), LiquidationRisk},
		{"below one", NewHealthFactor(d("0.7")), LiquidationRisk},
		{"zero", NewHealthFactor(decimal.Zero), LiquidationRisk},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RiskTierFor(tt.hf))
		})
	}
}

func TestAlertFor(t *testing.T) {
	assert.Equal(t, AlertNone, AlertFor(NoDebt))
	assert.Equal(t, AlertNone, AlertFor(NewHealthFactor(d("1.5"))))
	assert.Equal(t, AlertWarning, AlertFor(NewHealthFactor(d("1.49"))))
	assert.Equal(t, AlertWarning, AlertFor(NewHealthFactor(d("1.1"))))
	assert.Equal(t, AlertCritical, AlertFor(NewHealthFactor(d("1.09"))))
}

func TestHealthGauge(t *testing.T) {
	assert.True(t, HealthGauge(NoDebt).Equal(d("100")))
	assert.True(t, HealthGauge(NewHealthFactor(d("1.5"))).Equal(d("50")))
	assert.True(t, HealthGauge(NewHealthFactor(d("4.2"))).Equal(d("100")))
	assert.True(t, HealthGauge(NewHealthFactor(decimal.Zero)).IsZero())
}

func TestHealthFactorString(t *testing.T) {
	assert.Equal(t, "∞", NoDebt.String())
	assert.Equal(t, "1.60", NewHealthFactor(d("1.6")).String())
	assert.False(t, NoDebt.Equal(NewHealthFactor(decimal.Zero)))
}
