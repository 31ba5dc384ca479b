package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-converter/internal/apperrors"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/validation"
)

//go:generate mockgen -source=bulk.go -destination=bulk_mock_test.go -package=services

const (
	malformedRowMessage  = "Row is malformed or has missing columns."
	unexpectedRowMessage = "An unexpected error occurred."
)

var errMalformedRow = errors.New("malformed row")

// RateSource provides the latest rate table.
type RateSource interface {
	LatestRates(ctx context.Context) (models.RateTable, error)
}

// rowResult is the result of processing one data row: a record or an error.
type rowResult struct {
	record *models.ConversionRecord
	err    error
}

// outcome maps the row result to its client-visible outcome.
func (r rowResult) outcome(line int) models.BulkRowOutcome {
	if r.err == nil {
		id := r.record.ID.String()
		converted := r.record.ConvertedAmount
		return models.BulkRowOutcome{
			Line:            line,
			TransactionID:   &id,
			ConvertedAmount: &converted,
			Code:            models.BulkCodeSuccess,
			Message:         models.BulkMessageSuccess,
		}
	}

	var parseErr *csv.ParseError
	if errors.Is(r.err, errMalformedRow) || errors.As(r.err, &parseErr) {
		return models.BulkRowOutcome{
			Line:    line,
			Code:    string(apperrors.CodeInvalidRowFormat),
			Message: malformedRowMessage,
		}
	}

	if code, ok := apperrors.CodeOf(r.err); ok {
		return models.BulkRowOutcome{Line: line, Code: string(code), Message: r.err.Error()}
	}

	logger.Log.Errorw("unexpected error processing bulk row", "line", line, "error", r.err)
	return models.BulkRowOutcome{
		Line:    line,
		Code:    string(apperrors.CodeProcessing),
		Message: unexpectedRowMessage,
	}
}

// BulkService converts CSV batches row by row. A failing row never aborts the job.
type BulkService struct {
	normalizer Normalizer
	rates      RateSource
	ledger     ConversionRecorder
	metrics    *metrics.Metrics
}

// NewBulkService creates a new service instance
func NewBulkService(
	normalizer Normalizer,
	rates RateSource,
	ledger ConversionRecorder,
	m *metrics.Metrics,
) *BulkService {
	return &BulkService{
		normalizer: normalizer,
		rates:      rates,
		ledger:     ledger,
		metrics:    m,
	}
}

// BulkConvert reads a CSV with an amount, from, to header and returns one
// outcome per data row in input order. Only an invalid header or a failing
// input stream fail the whole job.
func (svc *BulkService) BulkConvert(ctx context.Context, r io.Reader) ([]models.BulkRowOutcome, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, apperrors.Wrap(apperrors.CodeBulkProcessing, err, "failed to process bulk CSV file")
	}
	if err := validation.ValidateHeader(header); err != nil {
		return nil, err
	}
	columns := validation.HeaderIndex(header)

	// One snapshot per job; rows never trigger further fetches.
	table, tableErr := svc.rates.LatestRates(ctx)
	if tableErr != nil {
		logger.Log.Errorw("rate table unavailable for bulk job", "error", tableErr)
	}
	table = table.Clone()

	outcomes := []models.BulkRowOutcome{}
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var res rowResult
		var parseErr *csv.ParseError
		switch {
		case errors.As(err, &parseErr):
			res = rowResult{err: err}
		case err != nil:
			return nil, apperrors.Wrap(apperrors.CodeBulkProcessing, err, "failed to process bulk CSV file")
		default:
			res = svc.convertRow(ctx, record, columns, table, tableErr)
		}

		outcome := res.outcome(line)
		svc.metrics.BulkRow(outcome.Code)
		outcomes = append(outcomes, outcome)
	}

	logger.Log.Infow("bulk job finished", "rows", len(outcomes))
	return outcomes, nil
}

func (svc *BulkService) convertRow(
	ctx context.Context,
	record []string,
	columns map[string]int,
	table models.RateTable,
	tableErr error,
) rowResult {
	field := func(name string) (string, bool) {
		i := columns[name]
		if i >= len(record) {
			return "", false
		}
		return strings.TrimSpace(record[i]), true
	}

	amountText, okAmount := field("amount")
	fromText, okFrom := field("from")
	toText, okTo := field("to")
	if !okAmount || !okFrom || !okTo {
		return rowResult{err: errMalformedRow}
	}

	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		return rowResult{err: fmt.Errorf("%w: amount %q: %v", errMalformedRow, amountText, err)}
	}

	from, err := svc.normalizer.NormalizeCurrencyCode(ctx, fromText)
	if err != nil {
		return rowResult{err: err}
	}
	to, err := svc.normalizer.NormalizeCurrencyCode(ctx, toText)
	if err != nil {
		return rowResult{err: err}
	}
	amount, err = svc.normalizer.NormalizeAmount(amount)
	if err != nil {
		return rowResult{err: err}
	}

	if tableErr != nil && from != to {
		return rowResult{err: tableErr}
	}
	rate, err := Resolve(from, to, table)
	if err != nil {
		return rowResult{err: err}
	}

	rec, err := svc.ledger.RecordConversion(ctx, amount, rate, from, to)
	if err != nil {
		return rowResult{err: err}
	}
	return rowResult{record: &rec}
}
