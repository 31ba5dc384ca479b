package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConversionRecord represents a row of the conversions ledger.
type ConversionRecord struct {
	ID              uuid.UUID       `json:"transaction_id" db:"id"`                 // Generated transaction identifier
	SourceCurrency  string          `json:"source_currency" db:"source_currency"`   // Normalized source code
	TargetCurrency  string          `json:"target_currency" db:"target_currency"`   // Normalized target code
	SourceAmount    decimal.Decimal `json:"source_amount" db:"source_amount"`       // Amount at scale 6
	ConvertedAmount decimal.Decimal `json:"converted_amount" db:"converted_amount"` // SourceAmount * ExchangeRate at scale 6
	ExchangeRate    decimal.Decimal `json:"exchange_rate" db:"exchange_rate"`       // Cross rate used
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`             // UTC instant of persistence
}

// ConversionEvent is published to Kafka after a conversion is recorded.
type ConversionEvent struct {
	TransactionID   string `json:"transaction_id"`
	SourceCurrency  string `json:"source_currency"`
	TargetCurrency  string `json:"target_currency"`
	SourceAmount    string `json:"source_amount"`
	ConvertedAmount string `json:"converted_amount"`
	ExchangeRate    string `json:"exchange_rate"`
	Timestamp       int64  `json:"timestamp"` // Unix seconds
}

// NewConversionEvent builds the event payload for a persisted record.
func NewConversionEvent(rec ConversionRecord) ConversionEvent {
	return ConversionEvent{
		TransactionID:   rec.ID.String(),
		SourceCurrency:  rec.SourceCurrency,
		TargetCurrency:  rec.TargetCurrency,
		SourceAmount:    rec.SourceAmount.StringFixed(6),
		ConvertedAmount: rec.ConvertedAmount.StringFixed(6),
		ExchangeRate:    rec.ExchangeRate.StringFixed(6),
		Timestamp:       rec.CreatedAt.Unix(),
	}
}

// HistoryPage is one page of ledger records.
type HistoryPage struct {
	Items []ConversionRecord `json:"items"`
	Page  int                `json:"page"`
	Size  int                `json:"size"`
	Total int64              `json:"total"`
}
