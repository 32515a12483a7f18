// Package market holds the static mock market the dashboard displays.
package market

import (
	"borrowx/types"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Catalogue struct {
	collateral map[string]types.AssetQuote
	borrow     map[string]types.AssetQuote
	stats      types.MarketStats
	pools      []types.Pool
	activity   []types.MarketActivity
}

func NewCatalogue(quotes []types.AssetQuote, stats types.MarketStats, pools []types.Pool, activity []types.MarketActivity) *Catalogue {
	c := &Catalogue{
		collateral: make(map[string]types.AssetQuote),
		borrow:     make(map[string]types.AssetQuote),
		stats:      stats,
		pools:      pools,
		activity:   activity,
	}
	for _, q := range quotes {
		key := strings.ToUpper(q.Symbol)
		switch q.Kind {
		case types.AssetKindCollateral:
			c.collateral[key] = q
		case types.AssetKindBorrow:
			c.borrow[key] = q
		}
	}
	return c
}

// Default returns the catalogue with the dashboard's mock figures.
func Default() *Catalogue {
	return NewCatalogue(defaultQuotes(), defaultStats(), defaultPools(), defaultActivity())
}

func (c *Catalogue) CollateralQuote(_ context.Context, symbol string) (types.AssetQuote, error) {
	return lookup(c.collateral, symbol, types.AssetKindCollateral)
}

func (c *Catalogue) BorrowQuote(_ context.Context, symbol string) (types.AssetQuote, error) {
	return lookup(c.borrow, symbol, types.AssetKindBorrow)
}

// ListQuotes returns every quote of kind, ordered by symbol.
func (c *Catalogue) ListQuotes(_ context.Context, kind types.AssetKind) ([]types.AssetQuote, error) {
	var src map[string]types.AssetQuote
	switch kind {
	case types.AssetKindCollateral:
		src = c.collateral
	case types.AssetKindBorrow:
		src = c.borrow
	default:
		return nil, fmt.Errorf("unknown asset kind %q", kind)
	}
	out := make([]types.AssetQuote, 0, len(src))
	for _, q := range src {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out, nil
}

func (c *Catalogue) Stats() types.MarketStats {
	return c.stats
}

func (c *Catalogue) TopPools() []types.Pool {
	return append([]types.Pool(nil), c.pools...)
}

func (c *Catalogue) RecentActivity() []types.MarketActivity {
	return append([]types.MarketActivity(nil), c.activity...)
}

func lookup(m map[string]types.AssetQuote, symbol string, kind types.AssetKind) (types.AssetQuote, error) {
	q, ok := m[strings.ToUpper(symbol)]
	if !ok {
		return types.AssetQuote{}, fmt.Errorf("%s asset %s %w", strings.ToLower(string(kind)), symbol, types.ErrAssetNotFound)
	}
	return q, nil
}

func defaultQuotes() []types.AssetQuote {
	return []types.AssetQuote{
		collateral("ETH", "Ethereum", "2400", "0.80"),
		collateral("BTC", "Bitcoin", "65000", "0.75"),
		collateral("USDC", "USD Coin", "1", "0.85"),
		borrowable("USDC", "USD Coin", "5.2", "1000000"),
		borrowable("DAI", "Dai Stablecoin", "4.8", "500000"),
		borrowable("USDT", "Tether USD", "5.5", "750000"),
	}
}

func collateral(symbol, name, price, ltv string) types.AssetQuote {
	return types.AssetQuote{
		Symbol:         symbol,
		Name:           name,
		Kind:           types.AssetKindCollateral,
		PriceUsd:       decimal.RequireFromString(price),
		LiquidationLtv: decimal.RequireFromString(ltv),
	}
}

// Borrowable assets are all USD stablecoins, so they are priced at one dollar.
func borrowable(symbol, name, apy, available string) types.AssetQuote {
	return types.AssetQuote{
		Symbol:           symbol,
		Name:             name,
		Kind:             types.AssetKindBorrow,
		PriceUsd:         decimal.NewFromInt(1),
		BorrowApyPercent: decimal.RequireFromString(apy),
		AvailableUsd:     decimal.RequireFromString(available),
	}
}

func defaultStats() types.MarketStats {
	return types.MarketStats{
		TotalLiquidityUsd: decimal.NewFromInt(2_845_000_000),
		TotalBorrowedUsd:  decimal.NewFromInt(1_892_000_000),
		AverageApy:        decimal.RequireFromString("4.8"),
		ActiveUsers:       45231,
	}
}

func defaultPools() []types.Pool {
	pool := func(asset string, supplied, borrowed int64, supplyApy, borrowApy string) types.Pool {
		return types.Pool{
			Asset:       asset,
			SuppliedUsd: decimal.NewFromInt(supplied),
			BorrowedUsd: decimal.NewFromInt(borrowed),
			SupplyApy:   decimal.RequireFromString(supplyApy),
			BorrowApy:   decimal.RequireFromString(borrowApy),
		}
	}
	return []types.Pool{
		pool("USDC", 892_000_000, 645_000_000, "3.2", "5.1"),
		pool("ETH", 456_000_000, 312_000_000, "2.8", "4.7"),
		pool("DAI", 234_000_000, 189_000_000, "3.5", "5.3"),
		pool("WBTC", 123_000_000, 87_000_000, "1.9", "3.8"),
	}
}

func defaultActivity() []types.MarketActivity {
	return []types.MarketActivity{
		{Kind: types.ActivityBorrow, Symbol: "USDC", Amount: decimal.NewFromInt(45000), Ago: 2 * time.Minute, User: "0x1234...5678"},
		{Kind: types.ActivityDeposit, Symbol: "ETH", Amount: decimal.RequireFromString("12.5"), Ago: 5 * time.Minute, User: "0xabcd...ef01"},
		{Kind: types.ActivityRepay, Symbol: "DAI", Amount: decimal.NewFromInt(8900), Ago: 8 * time.Minute, User: "0x9876...5432"},
		{Kind: types.ActivityWithdraw, Symbol: "USDC", Amount: decimal.NewFromInt(15000), Ago: 12 * time.Minute, User: "0xfedc...ba98"},
	}
}
