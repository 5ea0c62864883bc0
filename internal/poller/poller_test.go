package poller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stockpulse/quote-data/internal/api"
	"github.com/stockpulse/quote-data/internal/directory"
	"github.com/stockpulse/quote-data/internal/history"
	"github.com/stockpulse/quote-data/internal/model"
)

// quoteServer returns a test server answering the options endpoint with
// the given price per ticker. Tickers mapped to a negative price answer
// with a quote object missing regularMarketPrice.
func quoteServer(t *testing.T, prices map[string]float64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ticker := strings.TrimPrefix(r.URL.Path, "/v7/finance/options/")
		price, ok := prices[ticker]
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if price < 0 {
			fmt.Fprintf(w, `{"optionChain":{"result":[{"quote":{"symbol":%q}}],"error":null}}`, ticker)
			return
		}
		fmt.Fprintf(w, `{"optionChain":{"result":[{"quote":{"symbol":%q,"regularMarketPrice":%v,"regularMarketDayHigh":%v}}],"error":null}}`,
			ticker, price, price+1)
	}))
}

// recordingSink captures every snapshot it receives.
type recordingSink struct {
	snapshots [][]model.QuoteReading
}

func (s *recordingSink) WriteSnapshot(ctx context.Context, readings []model.QuoteReading) error {
	copied := make([]model.QuoteReading, len(readings))
	copy(copied, readings)
	s.snapshots = append(s.snapshots, copied)
	return nil
}

func testDirectory(t *testing.T, entries ...directory.Entry) *directory.Directory {
	t.Helper()
	d, err := directory.New(entries)
	if err != nil {
		t.Fatalf("build directory: %v", err)
	}
	return d
}

func TestRunDeterministicOrdering(t *testing.T) {
	server := quoteServer(t, map[string]float64{"A": 10, "B": 20, "C": 30})
	defer server.Close()

	dir := testDirectory(t,
		directory.Entry{Name: "A Corp", Ticker: "A"},
		directory.Entry{Name: "B Corp", Ticker: "B"},
		directory.Entry{Name: "C Corp", Ticker: "C"},
	)
	buffer := history.New(10)
	sink := &recordingSink{}

	p := New(Config{Interval: time.Millisecond, MaxRounds: 1},
		api.NewClient(server.URL), dir, buffer, []SnapshotSink{sink}, nil)

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	readings := buffer.Readings()
	if len(readings) != 3 {
		t.Fatalf("buffered readings = %d, want 3", len(readings))
	}
	for i, want := range []string{"A", "B", "C"} {
		if readings[i].Ticker != want {
			t.Errorf("readings[%d].Ticker = %q, want %q", i, readings[i].Ticker, want)
		}
	}
	if readings[0].LastPrice != 10 {
		t.Errorf("readings[0].LastPrice = %v, want 10", readings[0].LastPrice)
	}
	if readings[0].DayHigh != 11 {
		t.Errorf("readings[0].DayHigh = %v, want 11", readings[0].DayHigh)
	}

	if len(sink.snapshots) != 1 {
		t.Fatalf("sink snapshots = %d, want 1", len(sink.snapshots))
	}
	if len(sink.snapshots[0]) != 3 {
		t.Errorf("snapshot rows = %d, want 3", len(sink.snapshots[0]))
	}
}

func TestRunEvictionAcrossRounds(t *testing.T) {
	server := quoteServer(t, map[string]float64{"A": 10, "B": 20})
	defer server.Close()

	dir := testDirectory(t,
		directory.Entry{Name: "A Corp", Ticker: "A"},
		directory.Entry{Name: "B Corp", Ticker: "B"},
	)
	buffer := history.New(2)
	sink := &recordingSink{}

	p := New(Config{Interval: time.Millisecond, MaxRounds: 2},
		api.NewClient(server.URL), dir, buffer, []SnapshotSink{sink}, nil)

	// Advance the clock one minute per observation so round-2 readings
	// are distinguishable from round-1 readings.
	clock := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Round 2 displaced round 1 entirely: buffer is [A@t3, B@t4].
	readings := buffer.Readings()
	if len(readings) != 2 {
		t.Fatalf("buffered readings = %d, want 2", len(readings))
	}
	if readings[0].Ticker != "A" || readings[1].Ticker != "B" {
		t.Errorf("buffer order = [%s, %s], want [A, B]", readings[0].Ticker, readings[1].Ticker)
	}
	round2Start := time.Date(2025, 1, 15, 12, 3, 0, 0, time.UTC)
	if readings[0].ObservedAt.Before(round2Start) {
		t.Errorf("readings[0].ObservedAt = %v, want a round-2 timestamp", readings[0].ObservedAt)
	}

	if len(sink.snapshots) != 2 {
		t.Fatalf("sink snapshots = %d, want 2", len(sink.snapshots))
	}
	if len(sink.snapshots[0]) != 2 || len(sink.snapshots[1]) != 2 {
		t.Errorf("snapshot rows = [%d, %d], want [2, 2]", len(sink.snapshots[0]), len(sink.snapshots[1]))
	}
}

func TestRunUnknownCompanyAbortsRound(t *testing.T) {
	server := quoteServer(t, map[string]float64{"A": 10})
	defer server.Close()

	// The tracked list names a company the resolver does not know.
	dir := &fakeDirectory{
		companies: []string{"Nonexistent Corp"},
		resolver:  testDirectory(t, directory.Entry{Name: "A Corp", Ticker: "A"}),
	}
	buffer := history.New(10)
	sink := &recordingSink{}

	p := New(Config{Interval: time.Millisecond, MaxRounds: 1},
		api.NewClient(server.URL), dir, buffer, []SnapshotSink{sink}, nil)

	err := p.Run(context.Background())
	if err == nil {
		t.Fatal("Run expected error, got nil")
	}
	if !errors.Is(err, directory.ErrUnknownCompany) {
		t.Errorf("Run error = %v, want ErrUnknownCompany", err)
	}

	if buffer.Len() != 0 {
		t.Errorf("buffer.Len() = %d, want 0 (no reading appended)", buffer.Len())
	}
	if len(sink.snapshots) != 0 {
		t.Errorf("sink snapshots = %d, want 0 (round aborted before write)", len(sink.snapshots))
	}
}

// fakeDirectory decouples the tracked list from the resolver mapping.
type fakeDirectory struct {
	companies []string
	resolver  *directory.Directory
}

func (f *fakeDirectory) Companies() []string { return f.companies }
func (f *fakeDirectory) Resolve(name string) (string, error) {
	return f.resolver.Resolve(name)
}

func TestRunShapeFailureAbortsRound(t *testing.T) {
	// B answers without regularMarketPrice.
	server := quoteServer(t, map[string]float64{"A": 10, "B": -1})
	defer server.Close()

	dir := testDirectory(t,
		directory.Entry{Name: "A Corp", Ticker: "A"},
		directory.Entry{Name: "B Corp", Ticker: "B"},
	)
	buffer := history.New(10)
	sink := &recordingSink{}

	p := New(Config{Interval: time.Millisecond, MaxRounds: 1},
		api.NewClient(server.URL), dir, buffer, []SnapshotSink{sink}, nil)

	err := p.Run(context.Background())
	if err == nil {
		t.Fatal("Run expected error, got nil")
	}
	if !errors.Is(err, api.ErrMalformedResponse) {
		t.Errorf("Run error = %v, want ErrMalformedResponse", err)
	}

	// A's reading landed before the abort; B's never did and no
	// snapshot was written for the aborted round.
	if buffer.Len() != 1 {
		t.Errorf("buffer.Len() = %d, want 1", buffer.Len())
	}
	if len(sink.snapshots) != 0 {
		t.Errorf("sink snapshots = %d, want 0", len(sink.snapshots))
	}
}

func TestRunSinkErrorPropagates(t *testing.T) {
	server := quoteServer(t, map[string]float64{"A": 10})
	defer server.Close()

	dir := testDirectory(t, directory.Entry{Name: "A Corp", Ticker: "A"})
	wantErr := errors.New("disk full")
	sink := SnapshotSinkFunc(func(ctx context.Context, readings []model.QuoteReading) error {
		return wantErr
	})

	p := New(Config{Interval: time.Millisecond, MaxRounds: 1},
		api.NewClient(server.URL), dir, history.New(10), []SnapshotSink{sink}, nil)

	err := p.Run(context.Background())
	if !errors.Is(err, wantErr) {
		t.Errorf("Run error = %v, want %v", err, wantErr)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	server := quoteServer(t, map[string]float64{"A": 10})
	defer server.Close()

	dir := testDirectory(t, directory.Entry{Name: "A Corp", Ticker: "A"})
	sink := &recordingSink{}

	// Long interval: cancellation interrupts the inter-round sleep.
	p := New(Config{Interval: time.Hour, MaxRounds: 100},
		api.NewClient(server.URL), dir, history.New(10), []SnapshotSink{sink}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	err := p.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}

	if len(sink.snapshots) != 1 {
		t.Errorf("sink snapshots = %d, want 1 (first round completed)", len(sink.snapshots))
	}
}
