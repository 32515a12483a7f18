package main

import (
	"borrowx/internal/calculator"
	"borrowx/internal/market"
	"borrowx/internal/session"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"
)

var billion = decimal.NewFromInt(1_000_000_000)

func renderOverview(w io.Writer, o market.Overview) {
	fmt.Fprintf(w, "Market: $%sB liquidity, $%sB borrowed, %s%% avg APY, %.1fK users\n\n",
		o.Stats.TotalLiquidityUsd.Div(billion).StringFixed(2),
		o.Stats.TotalBorrowedUsd.Div(billion).StringFixed(2),
		o.Stats.AverageApy.String(),
		float64(o.Stats.ActiveUsers)/1000,
	)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "POOL\tSUPPLIED\tBORROWED\tSUPPLY APY\tBORROW APY\tUTILIZATION")
	for _, p := range o.Pools {
		fmt.Fprintf(tw, "%s\t$%s\t$%s\t%s%%\t%s%%\t%s%%\n",
			p.Asset,
			p.SuppliedUsd.StringFixed(0),
			p.BorrowedUsd.StringFixed(0),
			p.SupplyApy, p.BorrowApy,
			p.UtilizationPercent.StringFixed(0),
		)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func renderDashboard(w io.Writer, d session.Dashboard) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Total collateral\t$%s\n", d.Position.CollateralValueUsd.StringFixed(2))
	fmt.Fprintf(tw, "Total borrowed\t$%s\n", d.Position.BorrowedValueUsd.StringFixed(2))
	fmt.Fprintf(tw, "Available to borrow\t$%s\n", d.MaxBorrowable.StringFixed(2))
	fmt.Fprintf(tw, "Liquidation threshold\t$%s\n", d.LiquidationThresholdUsd.StringFixed(2))
	fmt.Fprintf(tw, "Liquidation buffer\t$%s\n", d.LiquidationBuffer.StringFixed(2))
	fmt.Fprintf(tw, "Total owed\t$%s\n", d.TotalOwed.StringFixed(2))
	fmt.Fprintf(tw, "Daily interest\t$%s\n", d.DailyInterest.StringFixed(2))
	fmt.Fprintf(tw, "Monthly interest\t$%s\n", d.MonthlyInterest.StringFixed(2))
	for _, days := range calculator.ForecastDays {
		fmt.Fprintf(tw, "Interest over %d days\t$%s\n", days, d.Forecast[days].StringFixed(2))
	}
	tw.Flush()

	renderGauge(w, d)

	switch d.Alert {
	case calculator.AlertCritical:
		fmt.Fprintln(w, "Critical: add collateral immediately to avoid liquidation")
	case calculator.AlertWarning:
		fmt.Fprintf(w, "Warning: your health factor is %s. Consider adding more collateral or repaying part of your loan.\n", d.HealthFactor)
	}
}

var tierColor = map[calculator.RiskTier]string{
	calculator.Healthy:         "green",
	calculator.Moderate:        "yellow",
	calculator.Risky:           "magenta",
	calculator.LiquidationRisk: "red",
}

func renderGauge(w io.Writer, d session.Dashboard) {
	color := tierColor[d.RiskTier]
	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionSetDescription(fmt.Sprintf("Health factor %s (%s)", d.HealthFactor, d.RiskTier)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[" + color + "]=[reset]",
			SaucerHead:    "[" + color + "]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	_ = bar.Set(int(d.Gauge.IntPart()))
	fmt.Fprintln(w)
}
