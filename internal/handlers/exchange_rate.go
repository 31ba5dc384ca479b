package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-converter/internal/validation"
)

//go:generate mockgen -source=exchange_rate.go -destination=exchange_rate_mock_test.go -package=handlers

// ExchangeRateGetter resolves the current rate between two currencies.
type ExchangeRateGetter interface {
	GetExchangeRate(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// ExchangeRateRequest holds the query parameters of the exchange rate endpoint.
type ExchangeRateRequest struct {
	From string `validate:"required,alpha,len=3"`
	To   string `validate:"required,alpha,len=3"`
}

// ExchangeRateResponse represents the current exchange rate
// swagger:model ExchangeRateResponse
type ExchangeRateResponse struct {
	// Rate at scale 6
	// example: 0.918273
	ExchangeRate string `json:"exchange_rate"`
}

// NewGetExchangeRateHandler returns an HTTP handler for fetching a single exchange rate.
// @Summary Get exchange rate
// @Description Returns the current rate between the source and target currency
// @Tags exchange
// @Produce json
// @Param from query string true "Source currency code" example(USD)
// @Param to query string true "Target currency code" example(EUR)
// @Success 200 {object} handlers.ExchangeRateResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid currency"
// @Failure 502 {object} handlers.ErrorResponse "Rate provider failure"
// @Failure 503 {object} handlers.ErrorResponse "Rate unavailable"
// @Router /exchange-rate [get]
func NewGetExchangeRateHandler(svc ExchangeRateGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := ExchangeRateRequest{
			From: r.URL.Query().Get("from"),
			To:   r.URL.Query().Get("to"),
		}
		if err := validate.Struct(req); err != nil {
			writeError(w, validationError(err))
			return
		}

		rate, err := svc.GetExchangeRate(r.Context(), req.From, req.To)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ExchangeRateResponse{
			ExchangeRate: rate.StringFixed(validation.Scale),
		})
	}
}

// RegisterGetExchangeRateHandler registers the exchange rate route
func RegisterGetExchangeRateHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/exchange-rate", h)
}
