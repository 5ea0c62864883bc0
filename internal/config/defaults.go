package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL      = "https://query1.finance.yahoo.com"
	DefaultAPITimeout   = 10 * time.Second
	DefaultPollInterval = 60 * time.Second
	DefaultMaxRounds    = 100
	DefaultHistorySize  = 100
	DefaultSnapshotPath = "data/stock_snapshot.csv"
	DefaultDBPort       = 5432
	DefaultDBSSLMode    = "prefer"
	DefaultMaxConns     = 10
	DefaultMinConns     = 2
)

func (c *GathererConfig) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}

	// Poller defaults
	if c.Poller.Interval == 0 {
		c.Poller.Interval = DefaultPollInterval
	}
	if c.Poller.MaxRounds == 0 {
		c.Poller.MaxRounds = DefaultMaxRounds
	}
	if c.Poller.HistorySize == 0 {
		c.Poller.HistorySize = DefaultHistorySize
	}

	// Snapshot defaults
	if c.Snapshot.Path == "" {
		c.Snapshot.Path = DefaultSnapshotPath
	}

	// Database defaults (only meaningful when the sink is enabled)
	applyDBDefaults(&c.Database.Timescale)
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}
