package main

import (
	"borrowx/internal/config"
	"borrowx/internal/market"
	"borrowx/internal/repository"
	"borrowx/internal/session"
	"borrowx/types"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	reportPath := flag.String("report", "", "write the session activity log as CSV to this path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *reportPath != "" {
		cfg.Report.ActivityPath = *reportPath
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("borrowx failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	catalogue := market.Default()

	var quotes session.QuoteSource = catalogue
	if cfg.Database.URL != "" {
		db, err := repository.NewDatabase(ctx, cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("connect quote database: %w", err)
		}
		defer db.Close()
		quotes = db
		logger.Info("serving quotes from database")
	}

	s := session.New(quotes, cfg.Risk.Risk(), session.WithLogger(logger))
	if err := demo(ctx, s); err != nil {
		return err
	}

	overview, err := catalogue.Overview()
	if err != nil {
		return err
	}
	renderOverview(os.Stdout, overview)

	dash, err := s.Dashboard()
	if err != nil {
		return err
	}
	renderDashboard(os.Stdout, dash)

	preview, err := s.PreviewRepay(dash.Position.BorrowedValueUsd.Div(decimal.NewFromInt(2)))
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Repaying half the debt would move the health factor to %s\n", preview)

	if cfg.Report.ActivityPath != "" {
		if err := s.WriteActivityCSVFile(cfg.Report.ActivityPath); err != nil {
			return err
		}
		logger.Info("activity report written", slog.String("path", cfg.Report.ActivityPath))
	}
	return nil
}

// demo walks the session through the dashboard's deposit, borrow and repay flow.
func demo(ctx context.Context, s *session.Session) error {
	if _, err := s.Deposit(ctx, "ETH", decimal.NewFromInt(2)); err != nil {
		return err
	}
	if _, err := s.Deposit(ctx, "BTC", decimal.RequireFromString("0.05")); err != nil {
		return err
	}
	if _, err := s.Borrow(ctx, "USDC", decimal.NewFromInt(2500), types.RateVariable); err != nil {
		return err
	}
	if _, err := s.Borrow(ctx, "DAI", decimal.NewFromInt(1200), types.RateFixed); err != nil {
		return err
	}
	if _, err := s.Repay(decimal.NewFromInt(500)); err != nil {
		return err
	}
	return nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
