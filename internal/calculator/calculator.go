// Package calculator holds the pure position formulas behind the dashboard:
// health factor, borrowing capacity, interest accrual and liquidation levels.
package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	DefaultLiquidationThreshold = decimal.RequireFromString("0.8")
	DefaultMaxLtv               = decimal.RequireFromString("0.75")

	daysPerYear   = decimal.NewFromInt(365)
	monthsPerYear = decimal.NewFromInt(12)
)

// ForecastDays are the horizons of InterestForecast.
var ForecastDays = []int64{7, 30, 90, 365}

func HealthFactorFor(collateral, borrowed, liquidationThreshold decimal.Decimal) (HealthFactor, error) {
	if err := nonNegative("collateral", collateral); err != nil {
		return HealthFactor{}, err
	}
	if err := nonNegative("borrowed", borrowed); err != nil {
		return HealthFactor{}, err
	}
	if err := ratio("liquidation threshold", liquidationThreshold); err != nil {
		return HealthFactor{}, err
	}
	if borrowed.IsZero() {
		return NoDebt, nil
	}
	return NewHealthFactor(collateral.Mul(liquidationThreshold).Div(borrowed)), nil
}

// MaxBorrowable is the remaining borrowing capacity, clamped at zero.
func MaxBorrowable(collateral, alreadyBorrowed, maxLtv decimal.Decimal) (decimal.Decimal, error) {
	if err := nonNegative("collateral", collateral); err != nil {
		return decimal.Zero, err
	}
	if err := nonNegative("borrowed", alreadyBorrowed); err != nil {
		return decimal.Zero, err
	}
	if err := ratio("max ltv", maxLtv); err != nil {
		return decimal.Zero, err
	}
	return decimal.Max(decimal.Zero, collateral.Mul(maxLtv).Sub(alreadyBorrowed)), nil
}

// AccruedInterest is simple interest over days on a 365-day year.
func AccruedInterest(principal, apyPercent, days decimal.Decimal) (decimal.Decimal, error) {
	if err := nonNegative("principal", principal); err != nil {
		return decimal.Zero, err
	}
	if err := nonNegative("apy", apyPercent); err != nil {
		return decimal.Zero, err
	}
	if err := nonNegative("days", days); err != nil {
		return decimal.Zero, err
	}
	return principal.Mul(apyPercent).Div(hundred).Mul(days).Div(daysPerYear), nil
}

func DailyInterest(principal, apyPercent decimal.Decimal) (decimal.Decimal, error) {
	return AccruedInterest(principal, apyPercent, decimal.NewFromInt(1))
}

func MonthlyInterest(principal, apyPercent decimal.Decimal) (decimal.Decimal, error) {
	if err := nonNegative("principal", principal); err != nil {
		return decimal.Zero, err
	}
	if err := nonNegative("apy", apyPercent); err != nil {
		return decimal.Zero, err
	}
	return principal.Mul(apyPercent).Div(hundred).Div(monthsPerYear), nil
}

// InterestForecast returns the accrual at each of ForecastDays, keyed by day count.
func InterestForecast(principal, apyPercent decimal.Decimal) (map[int64]decimal.Decimal, error) {
	out := make(map[int64]decimal.Decimal, len(ForecastDays))
	for _, d := range ForecastDays {
		v, err := AccruedInterest(principal, apyPercent, decimal.NewFromInt(d))
		if err != nil {
			return nil, err
		}
		out[d] = v
	}
	return out, nil
}

// LiquidationThresholdUsd is the collateral value at which the debt becomes liquidatable.
func LiquidationThresholdUsd(borrowed, liquidationThreshold decimal.Decimal) (decimal.Decimal, error) {
	if err := nonNegative("borrowed", borrowed); err != nil {
		return decimal.Zero, err
	}
	if err := ratio("liquidation threshold", liquidationThreshold); err != nil {
		return decimal.Zero, err
	}
	if !borrowed.IsPositive() {
		return decimal.Zero, nil
	}
	return borrowed.Div(liquidationThreshold), nil
}

// LiquidationBuffer is how far collateral sits above the liquidation level.
// It goes negative once the position is past it.
func LiquidationBuffer(collateral, borrowed, liquidationThreshold decimal.Decimal) (decimal.Decimal, error) {
	if err := nonNegative("collateral", collateral); err != nil {
		return decimal.Zero, err
	}
	level, err := LiquidationThresholdUsd(borrowed, liquidationThreshold)
	if err != nil {
		return decimal.Zero, err
	}
	return collateral.Sub(level), nil
}

// Utilization is borrowed over supplied as a percentage.
func Utilization(supplied, borrowed decimal.Decimal) (decimal.Decimal, error) {
	if err := nonNegative("supplied", supplied); err != nil {
		return decimal.Zero, err
	}
	if err := nonNegative("borrowed", borrowed); err != nil {
		return decimal.Zero, err
	}
	if supplied.IsZero() {
		return decimal.Zero, nil
	}
	return borrowed.Div(supplied).Mul(hundred), nil
}

func nonNegative(name string, v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%s %s is negative: %w", name, v, ErrInvalidArgument)
	}
	return nil
}

func ratio(name string, v decimal.Decimal) error {
	if !v.IsPositive() || v.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%s %s must be in (0, 1]: %w", name, v, ErrInvalidArgument)
	}
	return nil
}
