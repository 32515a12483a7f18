package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	getQuoteSQL = `SELECT symbol, name, kind, price_usd, liquidation_ltv, borrow_apy_percent, available_usd
FROM asset_quotes
WHERE kind = $1 AND upper(symbol) = upper($2)`

	listQuotesSQL = `SELECT symbol, name, kind, price_usd, liquidation_ltv, borrow_apy_percent, available_usd
FROM asset_quotes
WHERE kind = $1
ORDER BY symbol`
)

type quoteRow struct {
	Symbol           string
	Name             string
	Kind             string
	PriceUsd         decimal.Decimal
	LiquidationLtv   decimal.Decimal
	BorrowApyPercent decimal.Decimal
	AvailableUsd     decimal.Decimal
}

type queries struct {
	pool *pgxpool.Pool
}

func (q queries) GetQuote(ctx context.Context, kind, symbol string) (quoteRow, error) {
	var r quoteRow
	err := q.pool.QueryRow(ctx, getQuoteSQL, kind, symbol).Scan(
		&r.Symbol, &r.Name, &r.Kind, &r.PriceUsd, &r.LiquidationLtv, &r.BorrowApyPercent, &r.AvailableUsd,
	)
	return r, err
}

func (q queries) ListQuotes(ctx context.Context, kind string) ([]quoteRow, error) {
	rows, err := q.pool.Query(ctx, listQuotesSQL, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []quoteRow
	for rows.Next() {
		var r quoteRow
		if err := rows.Scan(&r.Symbol, &r.Name, &r.Kind, &r.PriceUsd, &r.LiquidationLtv, &r.BorrowApyPercent, &r.AvailableUsd); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
