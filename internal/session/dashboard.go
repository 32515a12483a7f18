package session

import (
	"borrowx/internal/calculator"
	"borrowx/types"
	"time"

	"github.com/shopspring/decimal"
)

type Dashboard struct {
	AsOf     time.Time
	Position types.Position
	Holdings []types.CollateralHolding
	Borrows  []types.BorrowSnapshot

	HealthFactor            calculator.HealthFactor
	RiskTier                calculator.RiskTier
	Alert                   calculator.Alert
	Gauge                   decimal.Decimal
	MaxBorrowable           decimal.Decimal
	LiquidationThresholdUsd decimal.Decimal
	LiquidationBuffer       decimal.Decimal

	AccruedInterest decimal.Decimal
	TotalOwed       decimal.Decimal
	DailyInterest   decimal.Decimal
	MonthlyInterest decimal.Decimal
	// Forecast is keyed by calculator.ForecastDays.
	Forecast        map[int64]decimal.Decimal
}

var dayNanos = decimal.NewFromInt(int64(24 * time.Hour))

// Dashboard snapshots the session at the current clock time.
func (s *Session) Dashboard() (Dashboard, error) {
	now := s.now()
	pos := s.position
	th := s.risk.LiquidationThreshold()

	hf, err := calculator.HealthFactorFor(pos.CollateralValueUsd, pos.BorrowedValueUsd, th)
	if err != nil {
		return Dashboard{}, err
	}
	maxBorrow, err := calculator.MaxBorrowable(pos.CollateralValueUsd, pos.BorrowedValueUsd, s.risk.MaxLtv())
	if err != nil {
		return Dashboard{}, err
	}
	level, err := calculator.LiquidationThresholdUsd(pos.BorrowedValueUsd, th)
	if err != nil {
		return Dashboard{}, err
	}
	buffer, err := calculator.LiquidationBuffer(pos.CollateralValueUsd, pos.BorrowedValueUsd, th)
	if err != nil {
		return Dashboard{}, err
	}

	d := Dashboard{
		AsOf:                    now,
		Position:                pos,
		Holdings:                make([]types.CollateralHolding, 0, len(s.holdings)),
		Borrows:                 make([]types.BorrowSnapshot, 0, len(s.borrows)),
		HealthFactor:            hf,
		RiskTier:                calculator.RiskTierFor(hf),
		Alert:                   calculator.AlertFor(hf),
		Gauge:                   calculator.HealthGauge(hf),
		MaxBorrowable:           maxBorrow,
		LiquidationThresholdUsd: level,
		LiquidationBuffer:       buffer,
		AccruedInterest:         decimal.Zero,
		DailyInterest:           decimal.Zero,
		MonthlyInterest:         decimal.Zero,
		Forecast:                make(map[int64]decimal.Decimal, len(calculator.ForecastDays)),
	}
	for _, h := range s.holdings {
		d.Holdings = append(d.Holdings, *h)
	}
	for _, days := range calculator.ForecastDays {
		d.Forecast[days] = decimal.Zero
	}

	for _, bp := range s.borrows {
		days := daysBetween(bp.OpenedAt, now)
		accrued, err := calculator.AccruedInterest(bp.PrincipalUsd, bp.ApyPercent, days)
		if err != nil {
			return Dashboard{}, err
		}
		daily, err := calculator.DailyInterest(bp.PrincipalUsd, bp.ApyPercent)
		if err != nil {
			return Dashboard{}, err
		}
		monthly, err := calculator.MonthlyInterest(bp.PrincipalUsd, bp.ApyPercent)
		if err != nil {
			return Dashboard{}, err
		}
		forecast, err := calculator.InterestForecast(bp.PrincipalUsd, bp.ApyPercent)
		if err != nil {
			return Dashboard{}, err
		}

		d.Borrows = append(d.Borrows, types.BorrowSnapshot{
			Symbol:          bp.Symbol,
			PrincipalUsd:    bp.PrincipalUsd,
			ApyPercent:      bp.ApyPercent,
			RateType:        bp.RateType,
			DaysActive:      days,
			AccruedInterest: accrued,
		})
		d.AccruedInterest = d.AccruedInterest.Add(accrued)
		d.DailyInterest = d.DailyInterest.Add(daily)
		d.MonthlyInterest = d.MonthlyInterest.Add(monthly)
		for k, v := range forecast {
			d.Forecast[k] = d.Forecast[k].Add(v)
		}
	}
	d.TotalOwed = pos.BorrowedValueUsd.Add(d.AccruedInterest)
	return d, nil
}

func daysBetween(from, to time.Time) decimal.Decimal {
	elapsed := to.Sub(from)
	if elapsed <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(elapsed)).Div(dayNanos)
}
