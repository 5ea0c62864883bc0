package model

import "time"

// QuoteReading represents one observation of a company's quote.
//
// A reading is created once per (company, round) pair and is immutable
// after creation. ObservedAt carries wall-clock time at second precision;
// sub-second digits are truncated when the reading is built.
type QuoteReading struct {
	Company    string    // Company display name (directory key)
	Ticker     string    // Exchange ticker symbol
	ObservedAt time.Time // Observation wall-clock time (second precision)
	LastPrice  float64   // regularMarketPrice from the quote endpoint
	DayHigh    float64   // regularMarketDayHigh from the quote endpoint
}
