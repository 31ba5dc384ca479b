package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-converter/internal/apperrors"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/validation"
)

//go:generate mockgen -source=rates.go -destination=rates_mock_test.go -package=services

// RateCache stores the latest rate table.
type RateCache interface {
	GetRates(ctx context.Context) (models.RateTable, bool)
	PutRates(ctx context.Context, table models.RateTable, ttl time.Duration)
}

// RateProvider fetches the latest rate table from the external source.
type RateProvider interface {
	GetLatestRates(ctx context.Context) (models.RateTable, error)
}

// Resolve computes the cross rate from -> to using table, whose rates are all
// quoted against the same base currency. Identical codes resolve to exactly 1
// without looking at the table.
func Resolve(from, to string, table models.RateTable) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	fromRate, okFrom := table[from]
	toRate, okTo := table[to]
	if !okFrom || !okTo || !fromRate.IsPositive() || !toRate.IsPositive() {
		return decimal.Zero, apperrors.RateUnavailable(from, to)
	}

	rate := toRate.DivRound(fromRate, validation.Scale)
	if !rate.IsPositive() {
		return decimal.Zero, apperrors.RateUnavailable(from, to)
	}
	return rate, nil
}

// RateService reads rate tables cache-aside: cache first, provider on a miss.
type RateService struct {
	cache    RateCache
	provider RateProvider
	ttl      time.Duration
	metrics  *metrics.Metrics
}

// NewRateService creates a new service instance
func NewRateService(cache RateCache, provider RateProvider, ttl time.Duration, m *metrics.Metrics) *RateService {
	return &RateService{
		cache:    cache,
		provider: provider,
		ttl:      ttl,
		metrics:  m,
	}
}

// LatestRates returns the cached table or, on a miss, fetches a fresh one and
// writes it back to the cache.
func (svc *RateService) LatestRates(ctx context.Context) (models.RateTable, error) {
	if table, ok := svc.cache.GetRates(ctx); ok {
		svc.metrics.CacheLookup(true)
		return table, nil
	}
	svc.metrics.CacheLookup(false)

	logger.Log.Warnw("rates not found in cache, fetching from provider")
	table, err := svc.provider.GetLatestRates(ctx)
	if err != nil {
		return nil, err
	}

	svc.cache.PutRates(ctx, table, svc.ttl)
	return table, nil
}

// ResolveWithFallback resolves the from -> to rate against the latest table.
// Identical codes never trigger a table fetch.
func (svc *RateService) ResolveWithFallback(ctx context.Context, from, to string) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	table, err := svc.LatestRates(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return Resolve(from, to, table)
}
