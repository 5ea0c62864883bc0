package poller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/stockpulse/quote-data/internal/api"
	"github.com/stockpulse/quote-data/internal/history"
	"github.com/stockpulse/quote-data/internal/model"
)

// CompanyDirectory supplies the tracked companies and their tickers.
type CompanyDirectory interface {
	// Companies returns the tracked company names in round order.
	Companies() []string

	// Resolve returns the ticker symbol for a company name.
	Resolve(name string) (string, error)
}

// SnapshotSink receives the full buffer contents after each round.
type SnapshotSink interface {
	WriteSnapshot(ctx context.Context, readings []model.QuoteReading) error
}

// SnapshotSinkFunc is a function adapter for SnapshotSink.
type SnapshotSinkFunc func(ctx context.Context, readings []model.QuoteReading) error

func (f SnapshotSinkFunc) WriteSnapshot(ctx context.Context, readings []model.QuoteReading) error {
	return f(ctx, readings)
}

// Config holds poller configuration.
type Config struct {
	Interval  time.Duration // Delay between rounds (default: 60s)
	MaxRounds int           // Rounds before the loop exits (default: 100)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Interval:  60 * time.Second,
		MaxRounds: 100,
	}
}

// Poller drives the polling loop: one reading per tracked company per
// round, appended to the history buffer, then every sink rewritten from
// the full buffer before sleeping until the next round.
type Poller struct {
	cfg       Config
	client    *api.Client
	directory CompanyDirectory
	buffer    *history.Buffer
	sinks     []SnapshotSink
	logger    *slog.Logger

	// now is swappable for tests; readings get second precision.
	now func() time.Time
}

// New creates a new Poller.
func New(cfg Config, client *api.Client, directory CompanyDirectory, buffer *history.Buffer, sinks []SnapshotSink, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		cfg:       cfg,
		client:    client,
		directory: directory,
		buffer:    buffer,
		sinks:     sinks,
		logger:    logger,
		now:       time.Now,
	}
}

// Run executes up to MaxRounds rounds, sleeping Interval between them.
//
// The loop is strictly sequential with no per-company error isolation:
// the first failure anywhere in a round aborts it and Run returns the
// error to the caller's single top-level guard. Run also returns when
// ctx is cancelled during the inter-round sleep.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info("poller started",
		"interval", p.cfg.Interval,
		"max_rounds", p.cfg.MaxRounds,
		"companies", len(p.directory.Companies()),
		"history_capacity", p.buffer.Cap(),
	)

	for round := 1; round <= p.cfg.MaxRounds; round++ {
		if err := p.pollRound(ctx, round); err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}

		if round == p.cfg.MaxRounds {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.cfg.Interval):
		}
	}

	p.logger.Info("poller finished", "rounds", p.cfg.MaxRounds)
	return nil
}

// pollRound fetches one reading per company, then rewrites every sink
// from the full buffer.
func (p *Poller) pollRound(ctx context.Context, round int) error {
	start := time.Now()

	for _, company := range p.directory.Companies() {
		ticker, err := p.directory.Resolve(company)
		if err != nil {
			return err
		}

		quote, err := p.client.GetQuote(ctx, ticker)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", ticker, err)
		}

		p.buffer.Append(model.QuoteReading{
			Company:    company,
			Ticker:     ticker,
			ObservedAt: p.now().Truncate(time.Second),
			LastPrice:  quote.LastPrice,
			DayHigh:    quote.DayHigh,
		})
	}

	readings := p.buffer.Readings()
	for _, sink := range p.sinks {
		if err := sink.WriteSnapshot(ctx, readings); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
	}

	p.logger.Info("poll round complete",
		"round", round,
		"companies", len(p.directory.Companies()),
		"buffered", len(readings),
		"duration", time.Since(start),
	)
	return nil
}
