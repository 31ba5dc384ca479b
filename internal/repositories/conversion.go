package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

const conversionColumns = `id, source_currency, target_currency, source_amount, converted_amount, exchange_rate, created_at`

// ConversionWriteRepository appends records to the conversions ledger.
type ConversionWriteRepository struct {
	db *sqlx.DB
}

func NewConversionWriteRepository(db *sqlx.DB) *ConversionWriteRepository {
	return &ConversionWriteRepository{db: db}
}

// Save inserts rec and returns the row as stored.
func (r *ConversionWriteRepository) Save(ctx context.Context, rec models.ConversionRecord) (models.ConversionRecord, error) {
	query := `
		INSERT INTO conversions (` + conversionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + conversionColumns

	args := []any{
		rec.ID,
		rec.SourceCurrency,
		rec.TargetCurrency,
		rec.SourceAmount,
		rec.ConvertedAmount,
		rec.ExchangeRate,
		rec.CreatedAt,
	}

	var saved models.ConversionRecord
	err := r.db.GetContext(ctx, &saved, query, args...)

	logger.Log.Infow(
		"db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", saved.ID,
		"error", err,
	)

	if err != nil {
		return models.ConversionRecord{}, err
	}
	saved.CreatedAt = saved.CreatedAt.UTC()
	return saved, nil
}

// ConversionReadRepository queries the conversions ledger.
type ConversionReadRepository struct {
	db *sqlx.DB
}

func NewConversionReadRepository(db *sqlx.DB) *ConversionReadRepository {
	return &ConversionReadRepository{db: db}
}

// FindByID returns the record with the given id, or nil if there is none.
func (r *ConversionReadRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.ConversionRecord, error) {
	query := `SELECT ` + conversionColumns + ` FROM conversions WHERE id = $1`

	var rec models.ConversionRecord
	err := r.db.GetContext(ctx, &rec, query, id)

	logger.Log.Infow(
		"db query",
		"query", query,
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	return &rec, nil
}

// FindByTimeRange returns records created in [start, end), newest first.
func (r *ConversionReadRepository) FindByTimeRange(ctx context.Context, start, end time.Time, limit, offset int) ([]models.ConversionRecord, error) {
	query := `
		SELECT ` + conversionColumns + `
		FROM conversions
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at DESC, id
		LIMIT $3 OFFSET $4
	`
	args := []any{start, end, limit, offset}

	records := []models.ConversionRecord{}
	err := r.db.SelectContext(ctx, &records, query, args...)

	logger.Log.Infow(
		"db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(records),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].CreatedAt = records[i].CreatedAt.UTC()
	}
	return records, nil
}

// CountByTimeRange counts records created in [start, end).
func (r *ConversionReadRepository) CountByTimeRange(ctx context.Context, start, end time.Time) (int64, error) {
	const query = `SELECT COUNT(*) FROM conversions WHERE created_at >= $1 AND created_at < $2`

	var total int64
	err := r.db.GetContext(ctx, &total, query, start, end)

	logger.Log.Infow(
		"db query",
		"query", query,
		"args", []any{start, end},
		"result", total,
		"error", err,
	)

	return total, err
}
