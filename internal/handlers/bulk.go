package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-currency-converter/internal/apperrors"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/validation"
)

//go:generate mockgen -source=bulk.go -destination=bulk_mock_test.go -package=handlers

// MaxUploadBytes bounds the size of a bulk upload request.
const MaxUploadBytes = 10 << 20

// BulkConverter converts every row of a CSV stream.
type BulkConverter interface {
	BulkConvert(ctx context.Context, r io.Reader) ([]models.BulkRowOutcome, error)
}

// BulkRowResponse is the outcome of one CSV data row
// swagger:model BulkRowResponse
type BulkRowResponse struct {
	// Line number in the uploaded CSV, first data row is 1
	Line int `json:"line"`

	// Transaction ID if the conversion succeeded
	TransactionID *string `json:"transaction_id,omitempty"`

	// Converted amount if the conversion succeeded
	// example: 92.340000
	ConvertedAmount *string `json:"converted_amount,omitempty"`

	// SUCCESS or an error code
	Code string `json:"code"`

	// OK or an error message
	Message string `json:"message"`
}

func newBulkRowResponse(o models.BulkRowOutcome) BulkRowResponse {
	resp := BulkRowResponse{
		Line:          o.Line,
		TransactionID: o.TransactionID,
		Code:          o.Code,
		Message:       o.Message,
	}
	if o.ConvertedAmount != nil {
		amount := o.ConvertedAmount.StringFixed(validation.Scale)
		resp.ConvertedAmount = &amount
	}
	return resp
}

// NewBulkConvertHandler handles CSV bulk conversions uploaded as multipart form field "file".
// @Summary Bulk convert currency
// @Description Converts every row of a CSV file with columns amount, from, to; failing rows are reported individually
// @Tags conversion
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {array} handlers.BulkRowResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid CSV header or missing file"
// @Failure 500 {object} handlers.ErrorResponse "Failed to process file"
// @Router /convert/bulk [post]
func NewBulkConvertHandler(svc BulkConverter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)

		file, _, err := r.FormFile("file")
		if err != nil {
			writeError(w, apperrors.Wrap(apperrors.CodeInvalidRequest, err, "multipart field 'file' is required"))
			return
		}
		defer file.Close()

		outcomes, err := svc.BulkConvert(r.Context(), file)
		if err != nil {
			writeError(w, err)
			return
		}

		resp := make([]BulkRowResponse, 0, len(outcomes))
		for _, o := range outcomes {
			resp = append(resp, newBulkRowResponse(o))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// RegisterBulkConvertHandler registers the bulk conversion route
func RegisterBulkConvertHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/convert/bulk", h)
}
