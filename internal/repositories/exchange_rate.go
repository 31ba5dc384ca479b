package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// DefaultRatesKey is the Redis hash holding the latest rate table.
const DefaultRatesKey = "exchange_rates:latest"

// ExchangeRateCacheRepository stores the latest rate table in a Redis hash,
// one field per currency code with the rate as decimal text.
type ExchangeRateCacheRepository struct {
	client redis.Cmdable
	key    string
}

// NewExchangeRateCacheRepository creates a new repository instance; an empty key means DefaultRatesKey.
func NewExchangeRateCacheRepository(client redis.Cmdable, key string) *ExchangeRateCacheRepository {
	if key == "" {
		key = DefaultRatesKey
	}
	return &ExchangeRateCacheRepository{
		client: client,
		key:    key,
	}
}

// GetRates returns the cached table. Any failure to read or parse the hash is
// reported as absent so callers fall back to the provider.
func (r *ExchangeRateCacheRepository) GetRates(ctx context.Context) (models.RateTable, bool) {
	values, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		logger.Log.Warnw("rate cache read failed", "key", r.key, "error", err)
		return nil, false
	}
	if len(values) == 0 {
		logger.Log.Infow("rate cache miss", "key", r.key)
		return nil, false
	}

	table := make(models.RateTable, len(values))
	for code, text := range values {
		rate, err := decimal.NewFromString(text)
		if err != nil {
			logger.Log.Warnw("rate cache holds unparsable value", "key", r.key, "field", code, "value", text, "error", err)
			return nil, false
		}
		table[code] = rate
	}

	logger.Log.Infow("rate cache hit", "key", r.key, "currencies", len(table))
	return table, true
}

// PutRates replaces the cached table and sets its expiration in one MULTI/EXEC.
// Failures are logged and swallowed.
func (r *ExchangeRateCacheRepository) PutRates(ctx context.Context, table models.RateTable, ttl time.Duration) {
	if len(table) == 0 {
		return
	}

	fields := make(map[string]any, len(table))
	for code, rate := range table {
		fields[code] = rate.String()
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.key)
		pipe.HSet(ctx, r.key, fields)
		pipe.Expire(ctx, r.key, ttl)
		return nil
	})

	logger.Log.Infow(
		"rate cache write",
		"key", r.key,
		"currencies", len(table),
		"ttl", ttl.String(),
		"error", err,
	)
}
