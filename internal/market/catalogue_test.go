package market

import (
	"borrowx/types"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogueQuotes(t *testing.T) {
	c := Default()
	ctx := context.Background()

	tests := []struct {
		name    string
		lookup  func(context.Context, string) (types.AssetQuote, error)
		symbol  string
		check   func(t *testing.T, q types.AssetQuote)
		wantErr error
	}{
		{"eth collateral", c.CollateralQuote, "ETH", func(t *testing.T, q types.AssetQuote) {
			assert.True(t, q.PriceUsd.Equal(decimal.NewFromInt(2400)))
			assert.True(t, q.LiquidationLtv.Equal(decimal.RequireFromString("0.8")))
		}, nil},
		{"lower case symbol", c.CollateralQuote, "btc", func(t *testing.T, q types.AssetQuote) {
			assert.Equal(t, "BTC", q.Symbol)
		}, nil},
		{"usdc borrow", c.BorrowQuote, "USDC", func(t *testing.T, q types.AssetQuote) {
			assert.True(t, q.BorrowApyPercent.Equal(decimal.RequireFromString("5.2")))
			assert.Equal(t, types.AssetKindBorrow, q.Kind)
		}, nil},
		{"dai is not collateral", c.CollateralQuote, "DAI", nil, types.ErrAssetNotFound},
		{"eth is not borrowable", c.BorrowQuote, "ETH", nil, types.ErrAssetNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := tt.lookup(ctx, tt.symbol)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, q)
		})
	}
}

func TestListQuotes(t *testing.T) {
	c := Default()

	got, err := c.ListQuotes(context.Background(), types.AssetKindBorrow)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"DAI", "USDC", "USDT"}, []string{got[0].Symbol, got[1].Symbol, got[2].Symbol})

	_, err = c.ListQuotes(context.Background(), types.AssetKind("OTHER"))
	assert.Error(t, err)
}

func TestOverview(t *testing.T) {
	o, err := Default().Overview()
	require.NoError(t, err)

	assert.Equal(t, 45231, o.Stats.ActiveUsers)
	require.Len(t, o.Pools, 4)
	assert.Equal(t, "USDC", o.Pools[0].Asset)
	// 645M of 892M
	assert.InDelta(t, 72.31, o.Pools[0].UtilizationPercent.InexactFloat64(), 0.01)
	assert.Len(t, o.Activity, 4)
}
