// Package writer implements snapshot sinks for the history buffer.
//
// Sinks:
//   - CSV snapshot writer (full overwrite per round, fixed header)
//   - Postgres writer (optional, append-only quote_readings table)
//
// Both receive the entire buffer after each round and must be idempotent
// for identical buffer contents.
package writer
