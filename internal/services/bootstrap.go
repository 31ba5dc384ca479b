package services

import (
	"context"
	"sort"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/validation"
)

//go:generate mockgen -source=bootstrap.go -destination=bootstrap_mock_test.go -package=services

// SymbolsProvider lists the currencies supported by the rate provider.
type SymbolsProvider interface {
	GetSupportedSymbols(ctx context.Context) (map[string]string, error)
}

// CurrencyStore persists catalog entries.
type CurrencyStore interface {
	SaveIfAbsent(ctx context.Context, c models.Currency) (bool, error)
}

// CurrencyBootstrapper seeds the currency catalog from the provider's symbol list.
type CurrencyBootstrapper struct {
	provider SymbolsProvider
	store    CurrencyStore
}

func NewCurrencyBootstrapper(provider SymbolsProvider, store CurrencyStore) *CurrencyBootstrapper {
	return &CurrencyBootstrapper{provider: provider, store: store}
}

// Initialize inserts every provider currency missing from the catalog as active
// and returns how many were added. Failures are logged, never returned.
func (b *CurrencyBootstrapper) Initialize(ctx context.Context) int {
	logger.Log.Infow("initializing currency catalog")

	symbols, err := b.provider.GetSupportedSymbols(ctx)
	if err != nil {
		logger.Log.Errorw("failed to fetch currency symbols, catalog may be incomplete", "error", err)
		return 0
	}

	codes := make([]string, 0, len(symbols))
	for code := range symbols {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	added := 0
	for _, code := range codes {
		normalized, err := validation.NormalizeCurrencyCode(code)
		if err != nil {
			logger.Log.Warnw("skipping malformed currency symbol", "code", code, "error", err)
			continue
		}

		inserted, err := b.store.SaveIfAbsent(ctx, models.Currency{
			Code:     normalized,
			Name:     symbols[code],
			IsActive: true,
		})
		if err != nil {
			logger.Log.Errorw("failed to save currency", "code", normalized, "error", err)
			continue
		}
		if inserted {
			added++
		}
	}

	logger.Log.Infow("currency catalog initialized", "symbols", len(codes), "added", added)
	return added
}
