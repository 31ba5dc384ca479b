package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-converter/internal/apperrors"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=conversion.go -destination=conversion_mock_test.go -package=services

// History page size bounds.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Normalizer validates and normalizes user supplied codes and amounts.
type Normalizer interface {
	NormalizeCurrencyCode(ctx context.Context, code string) (string, error)
	NormalizeAmount(amount decimal.Decimal) (decimal.Decimal, error)
}

// RateResolver resolves a single cross rate.
type RateResolver interface {
	ResolveWithFallback(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// ConversionRecorder records a resolved conversion in the ledger.
type ConversionRecorder interface {
	RecordConversion(ctx context.Context, amount, rate decimal.Decimal, from, to string) (models.ConversionRecord, error)
}

// ConversionReader queries the ledger.
type ConversionReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.ConversionRecord, error)
	FindByTimeRange(ctx context.Context, start, end time.Time, limit, offset int) ([]models.ConversionRecord, error)
	CountByTimeRange(ctx context.Context, start, end time.Time) (int64, error)
}

// ConversionService implements single conversions, rate lookups and ledger search.
type ConversionService struct {
	normalizer Normalizer
	rates      RateResolver
	ledger     ConversionRecorder
	reader     ConversionReader
	metrics    *metrics.Metrics
}

// NewConversionService creates a new service instance
func NewConversionService(
	normalizer Normalizer,
	rates RateResolver,
	ledger ConversionRecorder,
	reader ConversionReader,
	m *metrics.Metrics,
) *ConversionService {
	return &ConversionService{
		normalizer: normalizer,
		rates:      rates,
		ledger:     ledger,
		reader:     reader,
		metrics:    m,
	}
}

// GetExchangeRate returns the current from -> to rate.
func (svc *ConversionService) GetExchangeRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	fromNorm, err := svc.normalizer.NormalizeCurrencyCode(ctx, from)
	if err != nil {
		return decimal.Zero, err
	}
	toNorm, err := svc.normalizer.NormalizeCurrencyCode(ctx, to)
	if err != nil {
		return decimal.Zero, err
	}

	return svc.rates.ResolveWithFallback(ctx, fromNorm, toNorm)
}

// Convert converts amount from -> to at the current rate and records it.
func (svc *ConversionService) Convert(
	ctx context.Context,
	amount decimal.Decimal,
	from, to string,
) (rec models.ConversionRecord, err error) {
	defer func() {
		code := models.BulkCodeSuccess
		if err != nil {
			code = string(apperrors.CodeInternal)
			if c, ok := apperrors.CodeOf(err); ok {
				code = string(c)
			}
		}
		svc.metrics.Conversion(code)
	}()

	amountNorm, err := svc.normalizer.NormalizeAmount(amount)
	if err != nil {
		return models.ConversionRecord{}, err
	}
	fromNorm, err := svc.normalizer.NormalizeCurrencyCode(ctx, from)
	if err != nil {
		return models.ConversionRecord{}, err
	}
	toNorm, err := svc.normalizer.NormalizeCurrencyCode(ctx, to)
	if err != nil {
		return models.ConversionRecord{}, err
	}

	rate, err := svc.rates.ResolveWithFallback(ctx, fromNorm, toNorm)
	if err != nil {
		return models.ConversionRecord{}, err
	}

	return svc.ledger.RecordConversion(ctx, amountNorm, rate, fromNorm, toNorm)
}

// History searches the ledger by transaction id or by UTC calendar day.
// A transaction id takes precedence; if a date is also given the record must
// fall on that day, otherwise the page is empty. page is zero-based.
func (svc *ConversionService) History(
	ctx context.Context,
	transactionID string,
	date *time.Time,
	page, size int,
) (models.HistoryPage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	result := models.HistoryPage{Items: []models.ConversionRecord{}, Page: page, Size: size}

	if txID := strings.TrimSpace(transactionID); txID != "" {
		id, err := uuid.Parse(txID)
		if err != nil {
			logger.Log.Infow("history lookup with malformed transaction id", "transaction_id", txID)
			return result, nil
		}

		rec, err := svc.reader.FindByID(ctx, id)
		if err != nil {
			return models.HistoryPage{}, err
		}
		if rec == nil {
			return result, nil
		}
		if date != nil && !sameUTCDay(rec.CreatedAt, *date) {
			return result, nil
		}

		result.Items = []models.ConversionRecord{*rec}
		result.Total = 1
		return result, nil
	}

	if date != nil {
		start, end := utcDayBounds(*date)

		total, err := svc.reader.CountByTimeRange(ctx, start, end)
		if err != nil {
			return models.HistoryPage{}, err
		}
		result.Total = total
		if total == 0 || int64(page) > (total-1)/int64(size) {
			return result, nil
		}

		items, err := svc.reader.FindByTimeRange(ctx, start, end, size, page*size)
		if err != nil {
			return models.HistoryPage{}, err
		}
		result.Items = items
		return result, nil
	}

	return models.HistoryPage{}, apperrors.New(apperrors.CodeMissingFilter, "Either transactionId or date must be provided")
}

func utcDayBounds(date time.Time) (time.Time, time.Time) {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

func sameUTCDay(instant, date time.Time) bool {
	y1, m1, d1 := instant.UTC().Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
