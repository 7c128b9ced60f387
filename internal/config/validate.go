// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"

	log "github.com/sirupsen/logrus"

	"github.com/ystepanoff/owlsender/protocol"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if cfg.Sensor.ID < 0 || cfg.Sensor.ID > 255 {
		return fmt.Errorf("sensor.id %d: %w", cfg.Sensor.ID, protocol.ErrInvalidSensorID)
	}

	if cfg.Sensor.Pin < 0 {
		return fmt.Errorf("sensor.pin %d: %w", cfg.Sensor.Pin, protocol.ErrInvalidPin)
	}

	if _, err := log.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	if cfg.Metrics.Pushgateway != "" {
		u, err := url.Parse(cfg.Metrics.Pushgateway)
		if err != nil {
			return fmt.Errorf("metrics.pushgateway: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("metrics.pushgateway %q: scheme must be http or https", cfg.Metrics.Pushgateway)
		}
		if cfg.Metrics.Job == "" {
			return fmt.Errorf("metrics.job is required when metrics.pushgateway is set")
		}
	}

	return nil
}
