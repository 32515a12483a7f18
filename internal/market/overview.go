package market

import (
	"borrowx/internal/calculator"
	"borrowx/types"

	"github.com/shopspring/decimal"
)

type PoolView struct {
	types.Pool
	UtilizationPercent decimal.Decimal
}

type Overview struct {
	Stats    types.MarketStats
	Pools    []PoolView
	Activity []types.MarketActivity
}

// Overview derives pool utilization from the supplied and borrowed totals.
func (c *Catalogue) Overview() (Overview, error) {
	pools := make([]PoolView, 0, len(c.pools))
	for _, p := range c.pools {
		u, err := calculator.Utilization(p.SuppliedUsd, p.BorrowedUsd)
		if err != nil {
			return Overview{}, err
		}
		pools = append(pools, PoolView{Pool: p, UtilizationPercent: u})
	}
	return Overview{
		Stats:    c.stats,
		Pools:    pools,
		Activity: c.RecentActivity(),
	}, nil
}
