package calculator

import (
	"github.com/shopspring/decimal"
)

// HealthFactor is the ratio of risk-adjusted collateral to debt. A position
// without debt has no finite health factor and is represented explicitly
// instead of by a large placeholder number.
type HealthFactor struct {
	value  decimal.Decimal
	noDebt bool
}

var NoDebt = HealthFactor{noDebt: true}

func NewHealthFactor(value decimal.Decimal) HealthFactor {
	return HealthFactor{value: value}
}

func (h HealthFactor) IsInfinite() bool {
	return h.noDebt
}

// Value returns the finite ratio. It is zero for a no-debt health factor.
func (h HealthFactor) Value() decimal.Decimal {
	return h.value
}

func (h HealthFactor) GreaterThan(d decimal.Decimal) bool {
	return h.noDebt || h.value.GreaterThan(d)
}

func (h HealthFactor) LessThan(d decimal.Decimal) bool {
	return !h.noDebt && h.value.LessThan(d)
}

func (h HealthFactor) Equal(o HealthFactor) bool {
	if h.noDebt || o.noDebt {
		return h.noDebt == o.noDebt
	}
	return h.value.Equal(o.value)
}

func (h HealthFactor) String() string {
	if h.noDebt {
		return "∞"
	}
	return h.value.StringFixed(2)
}
