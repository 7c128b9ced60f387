// internal/config/normalize.go
package config

import "strings"

const (
	DefaultLogLevel = "info"
	DefaultJob      = "owlsend"
)

// Normalize fills defaults. It is allowed to mutate configuration and must be
// called before Validate.
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}

	cfg.Metrics.Pushgateway = strings.TrimSpace(cfg.Metrics.Pushgateway)
	if cfg.Metrics.Job == "" {
		cfg.Metrics.Job = DefaultJob
	}
}
