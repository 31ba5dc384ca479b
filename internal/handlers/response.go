package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/gw-currency-converter/internal/apperrors"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
)

var validate = validator.New()

// ErrorResponse is the body of every failed API request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Stable error code
	// example: RATE_UNAVAILABLE
	Code string `json:"code"`

	// Human readable description
	Message string `json:"message"`

	// UTC time the error was produced, RFC 3339
	Timestamp string `json:"timestamp"`
}

// statusFor maps an error code to its HTTP status.
func statusFor(code apperrors.Code) int {
	switch code {
	case apperrors.CodeInvalidCurrency,
		apperrors.CodeUnsupportedCurrency,
		apperrors.CodeInvalidAmount,
		apperrors.CodeInvalidHeader,
		apperrors.CodeInvalidRowFormat,
		apperrors.CodeMissingFilter,
		apperrors.CodeInvalidRequest:
		return http.StatusBadRequest
	case apperrors.CodeRateUnavailable:
		return http.StatusServiceUnavailable
	case apperrors.CodeExternalAPI:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes err as an ErrorResponse. Errors without a code are
// reported as INTERNAL_ERROR and their details are only logged.
func writeError(w http.ResponseWriter, err error) {
	code, ok := apperrors.CodeOf(err)
	message := err.Error()
	if !ok {
		logger.Log.Errorw("unhandled error", "error", err)
		code = apperrors.CodeInternal
		message = "An internal error occurred."
	}

	writeJSON(w, statusFor(code), ErrorResponse{
		Code:      string(code),
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// validationError converts validator failures into a typed error. Failures on
// amount fields become INVALID_AMOUNT, on currency fields INVALID_CURRENCY.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.Wrap(apperrors.CodeInvalidRequest, err, "invalid request")
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch {
	case field == "amount" && fe.Tag() == "required":
		return apperrors.InvalidAmount("amount is required")
	case field == "amount":
		return apperrors.InvalidAmount("invalid amount")
	case (field == "from" || field == "to") && fe.Tag() == "required":
		return apperrors.InvalidCurrency("field '%s': currency code is required", field)
	case field == "from" || field == "to":
		return apperrors.InvalidCurrency("field '%s': currency code must be three letters", field)
	case field == "date":
		return apperrors.New(apperrors.CodeInvalidRequest, "date must be in YYYY-MM-DD format")
	default:
		return apperrors.New(apperrors.CodeInvalidRequest, "invalid value for field '%s'", field)
	}
}
