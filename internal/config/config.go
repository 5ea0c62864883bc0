package config

import "time"

// GathererConfig is the root configuration for a gatherer instance.
type GathererConfig struct {
	Instance InstanceConfig `yaml:"instance"`
	API      APIConfig      `yaml:"api"`
	Tracking TrackingConfig `yaml:"tracking"`
	Poller   PollerConfig   `yaml:"poller"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Database DatabaseConfig `yaml:"database"`
}

// InstanceConfig identifies this gatherer.
type InstanceConfig struct {
	ID string `yaml:"id"`
}

// APIConfig holds quote endpoint settings.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// TrackingConfig holds the list of tracked companies. When empty, the
// built-in directory is used. Order is significant: rounds visit
// companies in the order listed here.
type TrackingConfig struct {
	Companies []CompanyConfig `yaml:"companies"`
}

// CompanyConfig maps one company display name to its ticker symbol.
type CompanyConfig struct {
	Name   string `yaml:"name"`
	Ticker string `yaml:"ticker"`
}

// PollerConfig holds polling loop settings.
type PollerConfig struct {
	Interval    time.Duration `yaml:"interval"`     // Delay between rounds (default: 60s)
	MaxRounds   int           `yaml:"max_rounds"`   // Rounds before the loop exits (default: 100)
	HistorySize int           `yaml:"history_size"` // Bounded history capacity (default: 100)
}

// SnapshotConfig holds CSV snapshot file settings.
type SnapshotConfig struct {
	Path string `yaml:"path"`
}

// DatabaseConfig holds the optional TimescaleDB sink. The gatherer runs
// CSV-only when Enabled is false.
type DatabaseConfig struct {
	Enabled   bool     `yaml:"enabled"`
	Timescale DBConfig `yaml:"timescale"`
}

// DBConfig holds a single database connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}
