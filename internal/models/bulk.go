package models

import "github.com/shopspring/decimal"

// Result code and message of a successfully converted bulk row.
const (
	BulkCodeSuccess    = "SUCCESS"
	BulkMessageSuccess = "OK"
)

// BulkRowOutcome is the result of one data row of a bulk job.
type BulkRowOutcome struct {
	Line            int              `json:"line"`                       // 1-based, first data row is 1
	TransactionID   *string          `json:"transaction_id,omitempty"`   // Present only on success
	ConvertedAmount *decimal.Decimal `json:"converted_amount,omitempty"` // Present only on success
	Code            string           `json:"code"`
	Message         string           `json:"message"`
}

// Succeeded reports whether the row was converted and recorded.
func (o BulkRowOutcome) Succeeded() bool {
	return o.Code == BulkCodeSuccess
}
