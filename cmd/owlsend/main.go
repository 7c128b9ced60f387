// cmd/owlsend/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/ystepanoff/owlsender"
	"github.com/ystepanoff/owlsender/driver/stub"
	"github.com/ystepanoff/owlsender/internal/config"
	"github.com/ystepanoff/owlsender/internal/metrics"
	"github.com/ystepanoff/owlsender/protocol"
)

const pushTimeout = 5 * time.Second

// Replaced in tests.
var (
	openOutput = owlsender.Open
	newMetrics = metrics.New
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("owlsend: %v", err)
	}
}

// run sends a single reading and returns. Scheduling repeated sends is left
// to the caller (cron, systemd timer, a metering daemon).
func run(args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("owlsend", pflag.ContinueOnError)
	fs.SetOutput(stdout)

	cfgPath := fs.StringP("config", "c", "", "path to YAML config")
	pin := fs.IntP("pin", "p", 0, "GPIO number of the transmitter data line")
	id := fs.IntP("id", "i", 0, "sensor id (0-255)")
	realtime := fs.IntP("realtime", "r", 0, "real-time power in W")
	accumulated := fs.Int64P("accumulated", "a", 0, "accumulated energy in Wh")
	level := fs.String("log-level", "", "log level (trace, debug, info, warn, error)")
	jsonLog := fs.Bool("log-json", false, "log as JSON")
	pushgateway := fs.String("pushgateway", "", "Prometheus Pushgateway URL")
	dryRun := fs.Bool("dry-run", false, "encode and print the frame without driving hardware")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if !fs.Changed("realtime") {
		return errors.New("--realtime is required")
	}

	// --------------------
	// Load + validate config
	// --------------------

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}

	if fs.Changed("pin") {
		cfg.Sensor.Pin = *pin
	}
	if fs.Changed("id") {
		cfg.Sensor.ID = *id
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = *level
	}
	if fs.Changed("log-json") {
		cfg.Log.JSON = *jsonLog
	}
	if fs.Changed("pushgateway") {
		cfg.Metrics.Pushgateway = *pushgateway
	}

	config.Normalize(cfg)
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if err := configureLogging(cfg.Log); err != nil {
		return err
	}

	sensorID := byte(cfg.Sensor.ID)
	logger := log.WithFields(log.Fields{"sensor_id": sensorID, "pin": cfg.Sensor.Pin})

	// --------------------
	// Transmitter
	// --------------------

	var (
		tx   *owlsender.Transmitter
		out  owlsender.Output
		line *stub.Line
	)
	if *dryRun {
		tx, line = owlsender.NewDryRun(sensorID)
		logger.Info("dry run, no hardware output")
	} else {
		var err error
		tx, out, err = openOutput(cfg.Sensor.Pin, sensorID)
		if err != nil {
			return err
		}
		defer func() {
			if err := out.Close(); err != nil {
				logger.Warnf("close pin: %v", err)
			}
		}()
	}

	m := newMetrics(sensorID)

	// The frame is timed by busy waiting; keep it on one OS thread.
	runtime.LockOSThread()
	start := time.Now()
	err := tx.Send(*realtime, *accumulated)
	took := time.Since(start)
	runtime.UnlockOSThread()

	// Pin writes fail silently during the frame.
	if err == nil && out != nil {
		err = out.Err()
	}

	m.Observe(*realtime, *accumulated, took, err)
	if err != nil {
		if pushErr := pushMetrics(cfg.Metrics, m); pushErr != nil {
			logger.Warnf("push metrics: %v", pushErr)
		}
		return fmt.Errorf("send: %w", err)
	}

	msg := tx.Message()
	logger.WithFields(log.Fields{
		"realtime_w": *realtime,
		"accu_wh":    *accumulated,
		"message":    msg.String(),
		"took":       took,
	}).Info("frame sent")

	if line != nil {
		printDryRun(stdout, msg, line)
	}

	if err := pushMetrics(cfg.Metrics, m); err != nil {
		return fmt.Errorf("push metrics: %w", err)
	}
	return nil
}

// pushMetrics pushes to the configured Pushgateway, if any.
func pushMetrics(cfg config.MetricsConfig, m *metrics.Metrics) error {
	if cfg.Pushgateway == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
	defer cancel()
	if err := m.Push(ctx, cfg.Pushgateway, cfg.Job); err != nil {
		return err
	}
	log.Debugf("metrics pushed to %s", cfg.Pushgateway)
	return nil
}

func configureLogging(cfg config.LogConfig) error {
	lvl, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)

	if cfg.JSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}

func printDryRun(w io.Writer, msg protocol.Message, line *stub.Line) {
	fmt.Fprintf(w, "message  %s\n", msg)
	if bits, ok := line.Bits(); ok {
		fmt.Fprintf(w, "bits     %s\n", protocol.FormatBits(bits))
	}
	fmt.Fprintf(w, "airtime  %s\n", line.Elapsed())
}
