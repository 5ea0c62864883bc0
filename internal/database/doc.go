// Package database provides pgx connection pool construction for the
// optional quote_readings sink.
package database
