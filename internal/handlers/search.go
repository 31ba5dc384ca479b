package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-currency-converter/internal/apperrors"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/validation"
)

//go:generate mockgen -source=search.go -destination=search_mock_test.go -package=handlers

const dateLayout = "2006-01-02"

// HistorySearcher searches the conversion ledger.
type HistorySearcher interface {
	History(ctx context.Context, transactionID string, date *time.Time, page, size int) (models.HistoryPage, error)
}

// HistoryRequest represents the JSON body of a ledger search
// swagger:model HistoryRequest
type HistoryRequest struct {
	// Filter by transaction ID
	TransactionID string `json:"transaction_id"`

	// Filter by UTC conversion date (YYYY-MM-DD)
	// example: 2025-04-30
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`

	Page int `json:"-" validate:"gte=0"`
	Size int `json:"-" validate:"gte=0,lte=100"`
}

// HistoryItem is one ledger record
// swagger:model HistoryItem
type HistoryItem struct {
	TransactionID   string `json:"transaction_id"`
	SourceCurrency  string `json:"source_currency"`
	TargetCurrency  string `json:"target_currency"`
	SourceAmount    string `json:"source_amount"`
	ConvertedAmount string `json:"converted_amount"`
	ExchangeRate    string `json:"exchange_rate"`
	Timestamp       string `json:"timestamp"`
}

// HistoryResponse is one page of search results
// swagger:model HistoryResponse
type HistoryResponse struct {
	Items         []HistoryItem `json:"items"`
	Page          int           `json:"page"`
	Size          int           `json:"size"`
	TotalElements int64         `json:"total_elements"`
}

func newHistoryItem(rec models.ConversionRecord) HistoryItem {
	return HistoryItem{
		TransactionID:   rec.ID.String(),
		SourceCurrency:  rec.SourceCurrency,
		TargetCurrency:  rec.TargetCurrency,
		SourceAmount:    rec.SourceAmount.StringFixed(validation.Scale),
		ConvertedAmount: rec.ConvertedAmount.StringFixed(validation.Scale),
		ExchangeRate:    rec.ExchangeRate.StringFixed(validation.Scale),
		Timestamp:       rec.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewSearchHistoryHandler handles ledger searches by transaction id or date.
// @Summary Search conversion history
// @Description Looks up conversions by transaction ID or by UTC date; at least one filter is required
// @Tags conversion
// @Accept json
// @Produce json
// @Param request body handlers.HistoryRequest true "Search filters"
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size, at most 100"
// @Success 200 {object} handlers.HistoryResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid filter"
// @Router /conversions/search [post]
func NewSearchHistoryHandler(svc HistorySearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req HistoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, apperrors.Wrap(apperrors.CodeInvalidRequest, err, "request body must be a valid JSON object"))
			return
		}

		var err error
		if req.Page, err = queryInt(r, "page"); err != nil {
			writeError(w, err)
			return
		}
		if req.Size, err = queryInt(r, "size"); err != nil {
			writeError(w, err)
			return
		}
		if err := validate.Struct(req); err != nil {
			writeError(w, validationError(err))
			return
		}

		var date *time.Time
		if req.Date != "" {
			d, err := time.Parse(dateLayout, req.Date)
			if err != nil {
				writeError(w, apperrors.New(apperrors.CodeInvalidRequest, "date must be in YYYY-MM-DD format"))
				return
			}
			date = &d
		}

		page, err := svc.History(r.Context(), req.TransactionID, date, req.Page, req.Size)
		if err != nil {
			writeError(w, err)
			return
		}

		resp := HistoryResponse{
			Items:         make([]HistoryItem, 0, len(page.Items)),
			Page:          page.Page,
			Size:          page.Size,
			TotalElements: page.Total,
		}
		for _, rec := range page.Items {
			resp.Items = append(resp.Items, newHistoryItem(rec))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// queryInt reads an optional non-negative integer query parameter.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.New(apperrors.CodeInvalidRequest, "query parameter '%s' must be an integer", name)
	}
	return v, nil
}

// RegisterSearchHistoryHandler registers the ledger search route
func RegisterSearchHistoryHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/conversions/search", h)
}
