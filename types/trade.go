package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Activity is one entry of a session's action log.
type Activity struct {
	ID        uuid.UUID
	Kind      ActivityKind
	Symbol    string
	Quantity  decimal.Decimal
	AmountUsd decimal.Decimal
	Time      time.Time
}

// MarketActivity is an illustrative row of the market-wide activity feed.
type MarketActivity struct {
	Kind   ActivityKind
	Symbol string
	Amount decimal.Decimal
	Ago    time.Duration
	User   string
}

type Pool struct {
	Asset       string
	SuppliedUsd decimal.Decimal
	BorrowedUsd decimal.Decimal
	SupplyApy   decimal.Decimal
	BorrowApy   decimal.Decimal
}

type MarketStats struct {
	TotalLiquidityUsd decimal.Decimal
	TotalBorrowedUsd  decimal.Decimal
	AverageApy        decimal.Decimal
	ActiveUsers       int
}
