package writer

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stockpulse/quote-data/internal/model"
)

// PostgresWriter mirrors each snapshot into the quote_readings table.
//
// The poller hands the full buffer to every sink after each round, so most
// rows of a given snapshot were already inserted by earlier rounds; the
// ON CONFLICT clause on (ticker, observed_at) skips them. Unlike the CSV
// snapshot this table is append-only history, including the day-high field
// the flat file omits.
type PostgresWriter struct {
	db     *pgxpool.Pool
	runID  uuid.UUID
	logger *slog.Logger

	// Metrics
	inserts   int64
	conflicts int64
}

// readingRow is the database row shape for one quote reading.
type readingRow struct {
	Company    string
	Ticker     string
	ObservedAt time.Time
	LastPrice  float64
	DayHigh    float64
	RunID      uuid.UUID
}

// NewPostgresWriter creates a writer that stamps rows with the given run ID.
func NewPostgresWriter(db *pgxpool.Pool, runID uuid.UUID, logger *slog.Logger) *PostgresWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresWriter{
		db:     db,
		runID:  runID,
		logger: logger,
	}
}

// WriteSnapshot batch-inserts the snapshot rows, skipping readings already
// present from earlier rounds.
func (w *PostgresWriter) WriteSnapshot(ctx context.Context, readings []model.QuoteReading) error {
	if len(readings) == 0 {
		return nil
	}

	start := time.Now()

	batch := &pgx.Batch{}
	for _, r := range readings {
		row := w.transform(r)
		batch.Queue(`
			INSERT INTO quote_readings (company, ticker, observed_at, last_price, day_high, run_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (ticker, observed_at) DO NOTHING
		`, row.Company, row.Ticker, row.ObservedAt, row.LastPrice, row.DayHigh, row.RunID)
	}

	results := w.db.SendBatch(ctx, batch)
	defer results.Close()

	conflicts := 0
	for range readings {
		ct, err := results.Exec()
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			conflicts++
		}
	}

	w.inserts += int64(len(readings) - conflicts)
	w.conflicts += int64(conflicts)

	w.logger.Debug("flushed readings",
		"rows", len(readings),
		"conflicts", conflicts,
		"duration", time.Since(start),
	)
	return nil
}

// transform converts a QuoteReading to its database row.
func (w *PostgresWriter) transform(r model.QuoteReading) readingRow {
	return readingRow{
		Company:    r.Company,
		Ticker:     r.Ticker,
		ObservedAt: r.ObservedAt,
		LastPrice:  r.LastPrice,
		DayHigh:    r.DayHigh,
		RunID:      w.runID,
	}
}
