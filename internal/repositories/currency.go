package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

type CurrencyRepository struct {
	db *sqlx.DB
}

func NewCurrencyRepository(db *sqlx.DB) *CurrencyRepository {
	return &CurrencyRepository{db: db}
}

// SaveIfAbsent inserts c unless its code already exists and reports whether a row was added.
func (r *CurrencyRepository) SaveIfAbsent(ctx context.Context, c models.Currency) (bool, error) {
	query := `
		INSERT INTO currencies (code, name, is_active)
		VALUES ($1, $2, $3)
		ON CONFLICT (code) DO NOTHING
	`
	args := []any{c.Code, c.Name, c.IsActive}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}

// IsActive reports whether code is in the catalog and active.
func (r *CurrencyRepository) IsActive(ctx context.Context, code string) (bool, error) {
	const query = `SELECT is_active FROM currencies WHERE code = $1`

	var active bool
	err := r.db.GetContext(ctx, &active, query, code)

	logger.Log.Infow(
		"db query",
		"query", query,
		"args", []any{code},
		"result", active,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return active, err
}
