package config

import "time"

type UIConfig struct {
	// LineHeight is how many scroll units one terminal line is worth.
	LineHeight             int `toml:"line_height"`
	RefreshIntervalSeconds int `toml:"refresh_interval_seconds"`
	RenderConcurrency      int `toml:"render_concurrency"`
}

// WithDefaults fills zero values. A negative refresh interval disables
// polling.
func (u UIConfig) WithDefaults() UIConfig {
	if u.LineHeight <= 0 {
		u.LineHeight = 20
	}
	if u.RefreshIntervalSeconds == 0 {
		u.RefreshIntervalSeconds = 30
	}
	if u.RenderConcurrency <= 0 {
		u.RenderConcurrency = 4
	}
	return u
}

func (u UIConfig) RefreshInterval() time.Duration {
	if u.RefreshIntervalSeconds <= 0 {
		return 0
	}
	return time.Duration(u.RefreshIntervalSeconds) * time.Second
}
