// Package model defines shared data types used across the quote gatherer.
//
// Conventions:
//   - Prices: float64 as reported by the quote endpoint
//   - Timestamps: time.Time truncated to whole seconds
//   - Company names are directory keys; tickers are exchange symbols
package model
