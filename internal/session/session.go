// Package session holds a single user's transient dashboard state. Deposit,
// Borrow and Repay mutate the position; Dashboard derives every displayed
// figure through the calculator. A Session is not safe for concurrent use.
package session

import (
	"borrowx/internal/calculator"
	"borrowx/internal/config"
	"borrowx/types"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientBalance   = errors.New("insufficient wallet balance")
	ErrExceedsBorrowCapacity = errors.New("amount exceeds borrowing capacity")
	ErrInsufficientLiquidity = errors.New("amount exceeds available market liquidity")
	ErrNothingToRepay        = errors.New("no outstanding debt")
)

// QuoteSource resolves symbols to static quotes. Both market.Catalogue and
// repository.Database satisfy it.
type QuoteSource interface {
	CollateralQuote(ctx context.Context, symbol string) (types.AssetQuote, error)
	BorrowQuote(ctx context.Context, symbol string) (types.AssetQuote, error)
}

type Option func(*Session)

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

type Session struct {
	quotes QuoteSource
	risk   config.Risk
	now    func() time.Time
	logger *slog.Logger

	position   types.Position
	holdings   []*types.CollateralHolding
	wallet     map[string]decimal.Decimal
	borrows    []*types.BorrowPosition
	activities []types.Activity
}

func New(quotes QuoteSource, risk config.Risk, opts ...Option) *Session {
	s := &Session{
		quotes: quotes,
		risk:   risk,
		now:    time.Now,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		wallet: make(map[string]decimal.Decimal),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Position() types.Position {
	return s.position
}

// WalletBalance is the simulated balance left for symbol.
func (s *Session) WalletBalance(symbol string) decimal.Decimal {
	if b, ok := s.wallet[strings.ToUpper(symbol)]; ok {
		return b
	}
	return s.risk.WalletBalance()
}

// Deposit moves quantity units of a collateral asset from the simulated
// wallet into the position and returns the USD value added.
func (s *Session) Deposit(ctx context.Context, symbol string, quantity decimal.Decimal) (decimal.Decimal, error) {
	if err := positive("quantity", quantity); err != nil {
		return decimal.Zero, s.reject(types.ActivityDeposit, symbol, err)
	}
	quote, err := s.quotes.CollateralQuote(ctx, symbol)
	if err != nil {
		return decimal.Zero, s.reject(types.ActivityDeposit, symbol, err)
	}
	balance := s.WalletBalance(quote.Symbol)
	if quantity.GreaterThan(balance) {
		return decimal.Zero, s.reject(types.ActivityDeposit, symbol,
			fmt.Errorf("deposit %s %s with %s available: %w", quantity, quote.Symbol, balance, ErrInsufficientBalance))
	}

	valueUsd := quantity.Mul(quote.PriceUsd)
	s.wallet[strings.ToUpper(quote.Symbol)] = balance.Sub(quantity)
	h := s.holding(quote.Symbol)
	h.Quantity = h.Quantity.Add(quantity)
	h.ValueUsd = h.ValueUsd.Add(valueUsd)
	s.position.CollateralValueUsd = s.position.CollateralValueUsd.Add(valueUsd)

	s.record(types.ActivityDeposit, quote.Symbol, quantity, valueUsd)
	s.logger.Info("collateral deposited",
		slog.String("symbol", quote.Symbol),
		slog.String("quantity", quantity.String()),
		slog.String("value_usd", valueUsd.String()),
		slog.String("collateral_usd", s.position.CollateralValueUsd.String()),
	)
	return valueUsd, nil
}

// Borrow opens a borrow position of amountUsd against the current collateral.
func (s *Session) Borrow(ctx context.Context, symbol string, amountUsd decimal.Decimal, rate types.RateType) (types.BorrowPosition, error) {
	if err := positive("amount", amountUsd); err != nil {
		return types.BorrowPosition{}, s.reject(types.ActivityBorrow, symbol, err)
	}
	if !rate.Valid() {
		return types.BorrowPosition{}, s.reject(types.ActivityBorrow, symbol,
			fmt.Errorf("rate type %q: %w", rate, calculator.ErrInvalidArgument))
	}
	quote, err := s.quotes.BorrowQuote(ctx, symbol)
	if err != nil {
		return types.BorrowPosition{}, s.reject(types.ActivityBorrow, symbol, err)
	}
	capacity, err := calculator.MaxBorrowable(s.position.CollateralValueUsd, s.position.BorrowedValueUsd, s.risk.MaxLtv())
	if err != nil {
		return types.BorrowPosition{}, s.reject(types.ActivityBorrow, symbol, err)
	}
	if amountUsd.GreaterThan(capacity) {
		return types.BorrowPosition{}, s.reject(types.ActivityBorrow, symbol,
			fmt.Errorf("borrow %s with capacity %s: %w", amountUsd, capacity, ErrExceedsBorrowCapacity))
	}
	if amountUsd.GreaterThan(quote.AvailableUsd) {
		return types.BorrowPosition{}, s.reject(types.ActivityBorrow, symbol,
			fmt.Errorf("borrow %s %s with %s available: %w", amountUsd, quote.Symbol, quote.AvailableUsd, ErrInsufficientLiquidity))
	}

	apy := quote.BorrowApyPercent
	if rate == types.RateFixed {
		apy = apy.Add(s.risk.FixedRatePremium())
	}
	bp := &types.BorrowPosition{
		Symbol:       quote.Symbol,
		PrincipalUsd: amountUsd,
		ApyPercent:   apy,
		RateType:     rate,
		OpenedAt:     s.now(),
	}
	s.borrows = append(s.borrows, bp)
	s.position.BorrowedValueUsd = s.position.BorrowedValueUsd.Add(amountUsd)

	s.record(types.ActivityBorrow, quote.Symbol, amountUsd, amountUsd)
	s.logger.Info("assets borrowed",
		slog.String("symbol", quote.Symbol),
		slog.String("amount_usd", amountUsd.String()),
		slog.String("apy", apy.String()),
		slog.String("rate", string(rate)),
		slog.String("borrowed_usd", s.position.BorrowedValueUsd.String()),
	)
	return *bp, nil
}

// Repay pays down principal, oldest borrow first. Anything above the
// outstanding principal is not applied; the applied amount is returned.
func (s *Session) Repay(amountUsd decimal.Decimal) (decimal.Decimal, error) {
	if err := positive("amount", amountUsd); err != nil {
		return decimal.Zero, s.reject(types.ActivityRepay, "", err)
	}
	if !s.position.BorrowedValueUsd.IsPositive() {
		return decimal.Zero, s.reject(types.ActivityRepay, "", ErrNothingToRepay)
	}

	applied := decimal.Min(amountUsd, s.position.BorrowedValueUsd)
	remaining := applied
	open := s.borrows[:0]
	for _, bp := range s.borrows {
		if remaining.IsPositive() {
			paid := decimal.Min(remaining, bp.PrincipalUsd)
			bp.PrincipalUsd = bp.PrincipalUsd.Sub(paid)
			remaining = remaining.Sub(paid)
		}
		if bp.PrincipalUsd.IsPositive() {
			open = append(open, bp)
		}
	}
	s.borrows = open
	s.position.BorrowedValueUsd = s.position.BorrowedValueUsd.Sub(applied)

	s.record(types.ActivityRepay, "", applied, applied)
	s.logger.Info("loan repaid",
		slog.String("requested_usd", amountUsd.String()),
		slog.String("applied_usd", applied.String()),
		slog.String("borrowed_usd", s.position.BorrowedValueUsd.String()),
	)
	return applied, nil
}

// PreviewRepay returns the health factor the position would have after
// repaying amountUsd, without changing it.
func (s *Session) PreviewRepay(amountUsd decimal.Decimal) (calculator.HealthFactor, error) {
	if amountUsd.IsNegative() {
		return calculator.HealthFactor{}, fmt.Errorf("amount %s is negative: %w", amountUsd, calculator.ErrInvalidArgument)
	}
	borrowed := decimal.Max(decimal.Zero, s.position.BorrowedValueUsd.Sub(amountUsd))
	return calculator.HealthFactorFor(s.position.CollateralValueUsd, borrowed, s.risk.LiquidationThreshold())
}

func (s *Session) Activities() []types.Activity {
	return append([]types.Activity(nil), s.activities...)
}

func (s *Session) holding(symbol string) *types.CollateralHolding {
	for _, h := range s.holdings {
		if h.Symbol == symbol {
			return h
		}
	}
	h := &types.CollateralHolding{Symbol: symbol}
	s.holdings = append(s.holdings, h)
	return h
}

func (s *Session) record(kind types.ActivityKind, symbol string, quantity, amountUsd decimal.Decimal) {
	s.activities = append(s.activities, types.Activity{
		ID:        uuid.New(),
		Kind:      kind,
		Symbol:    symbol,
		Quantity:  quantity,
		AmountUsd: amountUsd,
		Time:      s.now(),
	})
}

func (s *Session) reject(kind types.ActivityKind, symbol string, err error) error {
	s.logger.Warn("action rejected",
		slog.String("action", string(kind)),
		slog.String("symbol", symbol),
		slog.String("error", err.Error()),
	)
	return err
}

func positive(name string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return fmt.Errorf("%s %s must be positive: %w", name, v, calculator.ErrInvalidArgument)
	}
	return nil
}
