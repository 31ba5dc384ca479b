package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/validation"
)

//go:generate mockgen -source=ledger.go -destination=ledger_mock_test.go -package=services

// ConversionSaver persists ledger records.
type ConversionSaver interface {
	Save(ctx context.Context, rec models.ConversionRecord) (models.ConversionRecord, error)
}

// KafkaWriter defines the subset of kafka.Writer used for conversion events.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
}

// LedgerWriter turns a resolved conversion into a persisted ledger record.
type LedgerWriter struct {
	saver       ConversionSaver
	kafkaWriter KafkaWriter
	now         func() time.Time
	newID       func() uuid.UUID
}

// NewLedgerWriter creates a new LedgerWriter. kafkaWriter may be nil.
func NewLedgerWriter(saver ConversionSaver, kafkaWriter KafkaWriter) *LedgerWriter {
	return &LedgerWriter{
		saver:       saver,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
		newID:       uuid.New,
	}
}

// RecordConversion computes the converted amount, persists the record and
// returns it as stored.
func (w *LedgerWriter) RecordConversion(
	ctx context.Context,
	amount, rate decimal.Decimal,
	from, to string,
) (models.ConversionRecord, error) {
	rec := models.ConversionRecord{
		ID:              w.newID(),
		SourceCurrency:  from,
		TargetCurrency:  to,
		SourceAmount:    amount,
		ConvertedAmount: amount.Mul(rate).Round(validation.Scale),
		ExchangeRate:    rate,
		CreatedAt:       w.now().UTC(),
	}

	saved, err := w.saver.Save(ctx, rec)
	if err != nil {
		logger.Log.Errorw("failed to save conversion", "transaction_id", rec.ID, "error", err)
		return models.ConversionRecord{}, err
	}

	w.publish(ctx, saved)
	return saved, nil
}

// publish sends the conversion event; failures are only logged.
func (w *LedgerWriter) publish(ctx context.Context, rec models.ConversionRecord) {
	if w.kafkaWriter == nil {
		return
	}

	data, err := json.Marshal(models.NewConversionEvent(rec))
	if err != nil {
		logger.Log.Errorw("failed to marshal conversion event", "transaction_id", rec.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(rec.ID.String()),
		Value: data,
		Time:  rec.CreatedAt,
	}

	if err := w.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish conversion event", "transaction_id", rec.ID, "error", err)
		return
	}
	logger.Log.Infow("conversion event published", "transaction_id", rec.ID)
}
