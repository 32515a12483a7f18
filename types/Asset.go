package types

import (
	"github.com/shopspring/decimal"
)

type AssetKind string

const (
	AssetKindCollateral AssetKind = "COLLATERAL"
	AssetKindBorrow     AssetKind = "BORROW"
)

// AssetQuote is a static, mocked market quote. Collateral quotes carry a
// price and liquidation LTV, borrow quotes carry an APY and available liquidity.
type AssetQuote struct {
	Symbol           string          `json:"symbol"`
	Name             string          `json:"name"`
	Kind             AssetKind       `json:"kind"`
	PriceUsd         decimal.Decimal `json:"priceUsd"`
	LiquidationLtv   decimal.Decimal `json:"liquidationLtv"`
	BorrowApyPercent decimal.Decimal `json:"borrowApyPercent"`
	AvailableUsd     decimal.Decimal `json:"availableUsd"`
}
