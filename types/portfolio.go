package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Position is the aggregate collateral and debt of a session, in USD.
// Both fields are never negative.
type Position struct {
	CollateralValueUsd decimal.Decimal
	BorrowedValueUsd   decimal.Decimal
}

type CollateralHolding struct {
	Symbol   string
	Quantity decimal.Decimal
	ValueUsd decimal.Decimal
}

type BorrowPosition struct {
	Symbol       string
	PrincipalUsd decimal.Decimal
	ApyPercent   decimal.Decimal
	RateType     RateType
	OpenedAt     time.Time
}

type BorrowSnapshot struct {
	Symbol          string
	PrincipalUsd    decimal.Decimal
	ApyPercent      decimal.Decimal
	RateType        RateType
	DaysActive      decimal.Decimal
	AccruedInterest decimal.Decimal
}
