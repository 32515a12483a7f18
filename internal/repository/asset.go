package repository

import (
	"borrowx/types"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

func (db *Database) CollateralQuote(ctx context.Context, symbol string) (types.AssetQuote, error) {
	return db.getQuote(ctx, types.AssetKindCollateral, symbol)
}

func (db *Database) BorrowQuote(ctx context.Context, symbol string) (types.AssetQuote, error) {
	return db.getQuote(ctx, types.AssetKindBorrow, symbol)
}

// ListQuotes returns every quote of kind, ordered by symbol.
func (db *Database) ListQuotes(ctx context.Context, kind types.AssetKind) ([]types.AssetQuote, error) {
	rows, err := db.quotes.ListQuotes(ctx, string(kind))
	if err != nil {
		return nil, fmt.Errorf("list %s quotes: %w", kind, err)
	}
	out := make([]types.AssetQuote, 0, len(rows))
	for _, r := range rows {
		out = append(out, toAssetQuote(r))
	}
	return out, nil
}

func (db *Database) getQuote(ctx context.Context, kind types.AssetKind, symbol string) (types.AssetQuote, error) {
	row, err := db.quotes.GetQuote(ctx, string(kind), symbol)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.AssetQuote{}, fmt.Errorf("symbol %s %w", symbol, types.ErrAssetNotFound)
		}
		return types.AssetQuote{}, err
	}
	return toAssetQuote(row), nil
}

func toAssetQuote(r quoteRow) types.AssetQuote {
	return types.AssetQuote{
		Symbol:           r.Symbol,
		Name:             r.Name,
		Kind:             types.AssetKind(r.Kind),
		PriceUsd:         r.PriceUsd,
		LiquidationLtv:   r.LiquidationLtv,
		BorrowApyPercent: r.BorrowApyPercent,
		AvailableUsd:     r.AvailableUsd,
	}
}
