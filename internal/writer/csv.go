package writer

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/stockpulse/quote-data/internal/model"
)

// timeLayout is the wall-clock format written to the Time column.
const timeLayout = "2006-01-02 15:04:05"

// csvHeader is the fixed snapshot column header.
var csvHeader = []string{"Company", "Ticker", "Time", "Stock_Price"}

// CSVWriter persists the history buffer as a CSV snapshot file.
//
// The file is a full dump of current buffer state, not an append log:
// every write truncates and rewrites it, so the artifact always reads as
// "the last N readings" without offset tracking or compaction.
type CSVWriter struct {
	path   string
	logger *slog.Logger
}

// NewCSVWriter creates a snapshot writer for the given file path.
func NewCSVWriter(path string, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{
		path:   path,
		logger: logger,
	}
}

// Path returns the snapshot file path.
func (w *CSVWriter) Path() string {
	return w.path
}

// Init creates the data directory and, when the snapshot file does not
// exist yet, writes a header-only file before the first round.
func (w *CSVWriter) Init() error {
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot directory: %w", err)
		}
	}

	if _, err := os.Stat(w.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat snapshot file: %w", err)
	}

	if err := w.write(nil); err != nil {
		return err
	}

	w.logger.Info("initialized snapshot file", "path", w.path)
	return nil
}

// WriteSnapshot rewrites the snapshot file from the full buffer contents,
// one row per reading, in buffer order.
func (w *CSVWriter) WriteSnapshot(ctx context.Context, readings []model.QuoteReading) error {
	start := time.Now()

	if err := w.write(readings); err != nil {
		return err
	}

	w.logger.Debug("snapshot written",
		"path", w.path,
		"rows", len(readings),
		"duration", time.Since(start),
	)
	return nil
}

// write truncates the file and writes the header plus the given rows.
func (w *CSVWriter) write(readings []model.QuoteReading) error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(csvHeader); err != nil {
		f.Close()
		return fmt.Errorf("write snapshot header: %w", err)
	}
	for _, r := range readings {
		row := []string{
			r.Company,
			r.Ticker,
			r.ObservedAt.Format(timeLayout),
			strconv.FormatFloat(r.LastPrice, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write snapshot row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush snapshot: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot file: %w", err)
	}
	return nil
}
