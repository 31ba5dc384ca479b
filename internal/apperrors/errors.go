package apperrors

import (
	"errors"
	"fmt"
)

// Code is a stable, client-visible error identifier.
type Code string

const (
	CodeInvalidCurrency     Code = "INVALID_CURRENCY"
	CodeUnsupportedCurrency Code = "UNSUPPORTED_CURRENCY"
	CodeInvalidAmount       Code = "INVALID_AMOUNT"
	CodeRateUnavailable     Code = "RATE_UNAVAILABLE"
	CodeExternalAPI         Code = "EXTERNAL_API_ERROR"
	CodeInvalidHeader       Code = "INVALID_CSV_HEADER"
	CodeBulkProcessing      Code = "BULK_PROCESSING_ERROR"
	CodeInvalidRowFormat    Code = "INVALID_ROW_FORMAT"
	CodeProcessing          Code = "PROCESSING_ERROR"
	CodeMissingFilter       Code = "MISSING_FILTER"
	CodeInvalidRequest      Code = "INVALID_REQUEST"
	CodeInternal            Code = "INTERNAL_ERROR"
)

// Error is a typed application error carrying a Code and a human-readable message.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code. This lets the
// package-level sentinels below be used with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is matching.
var (
	ErrInvalidCurrency     = &Error{Code: CodeInvalidCurrency}
	ErrUnsupportedCurrency = &Error{Code: CodeUnsupportedCurrency}
	ErrInvalidAmount       = &Error{Code: CodeInvalidAmount}
	ErrRateUnavailable     = &Error{Code: CodeRateUnavailable}
	ErrExternalAPI         = &Error{Code: CodeExternalAPI}
	ErrInvalidHeader       = &Error{Code: CodeInvalidHeader}
	ErrBulkProcessing      = &Error{Code: CodeBulkProcessing}
	ErrMissingFilter       = &Error{Code: CodeMissingFilter}
)

// New creates an error with the given code and formatted message.
func New(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an error with the given code and message that wraps cause.
func Wrap(code Code, cause error, message string) error {
	return &Error{Code: code, Message: message, Err: cause}
}

func InvalidCurrency(format string, args ...any) error {
	return New(CodeInvalidCurrency, format, args...)
}

func UnsupportedCurrency(code string) error {
	return New(CodeUnsupportedCurrency, "the currency '%s' is not supported or is inactive", code)
}

func InvalidAmount(format string, args ...any) error {
	return New(CodeInvalidAmount, format, args...)
}

func RateUnavailable(from, to string) error {
	return New(CodeRateUnavailable, "rate for %s or %s not found in the data source", from, to)
}

func ExternalAPI(cause error, format string, args ...any) error {
	return Wrap(CodeExternalAPI, cause, fmt.Sprintf(format, args...))
}

// CodeOf returns the code of the first *Error in err's chain.
func CodeOf(err error) (Code, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}
