package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-converter/internal/apperrors"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/validation"
)

//go:generate mockgen -source=convert.go -destination=convert_mock_test.go -package=handlers

// Converter converts an amount and records the conversion.
type Converter interface {
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) (models.ConversionRecord, error)
}

// ConvertRequest represents the JSON body for a currency conversion
// swagger:model ConvertRequest
type ConvertRequest struct {
	// Amount to convert, number or numeric string
	// required: true
	// example: 100.00
	Amount *decimal.Decimal `json:"amount" validate:"required"`

	// Source currency code
	// required: true
	// example: USD
	From string `json:"from" validate:"required,alpha,len=3"`

	// Target currency code
	// required: true
	// example: EUR
	To string `json:"to" validate:"required,alpha,len=3"`
}

// ConvertResponse represents a recorded conversion
// swagger:model ConvertResponse
type ConvertResponse struct {
	// Ledger transaction identifier
	TransactionID string `json:"transaction_id"`

	// Converted amount at scale 6
	// example: 92.340000
	ConvertedAmount string `json:"converted_amount"`
}

// NewConvertHandler handles single currency conversions.
// @Summary Convert currency
// @Description Converts an amount at the current rate and records the conversion in the ledger
// @Tags conversion
// @Accept json
// @Produce json
// @Param request body handlers.ConvertRequest true "Conversion Request"
// @Success 200 {object} handlers.ConvertResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount or currency"
// @Failure 502 {object} handlers.ErrorResponse "Rate provider failure"
// @Failure 503 {object} handlers.ErrorResponse "Rate unavailable"
// @Router /convert [post]
func NewConvertHandler(svc Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ConvertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, apperrors.Wrap(apperrors.CodeInvalidRequest, err, "request body must be a valid JSON object"))
			return
		}
		if err := validate.Struct(req); err != nil {
			writeError(w, validationError(err))
			return
		}

		rec, err := svc.Convert(r.Context(), *req.Amount, req.From, req.To)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ConvertResponse{
			TransactionID:   rec.ID.String(),
			ConvertedAmount: rec.ConvertedAmount.StringFixed(validation.Scale),
		})
	}
}

// RegisterConvertHandler registers the conversion route
func RegisterConvertHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/convert", h)
}
