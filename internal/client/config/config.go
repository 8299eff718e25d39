package config

import "time"

// Config holds runtime settings for the Daybook client.
//
// Fields:
//   - BaseURL: origin of the backend HTTP API. The deployment address has
//     moved between environments, so it is configuration, never a constant.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabaseDSN: path of the local SQLite database.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DatabaseDSN    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 15 * time.Second
	c.DatabaseDSN = "daybook.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
