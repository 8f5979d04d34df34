package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"FXResample/internal/config"
	"FXResample/internal/converter"
	"FXResample/internal/driver"
	"FXResample/internal/logger"
	"FXResample/internal/recorder"
	"FXResample/internal/scheduler"
)

func main() {
	cfg, log, closer, err := setup()
	if err != nil {
		// no logger yet
		fmt.Fprintf(os.Stderr, "fxresample: %v\n", err)
		os.Exit(1)
	}

	code := execute(cfg, log)
	closer.Close()
	os.Exit(code)
}

// execute runs the conversion and returns the process exit code. Failures
// are reported through the logger only.
func execute(cfg *config.Config, log zerolog.Logger) int {
	if err := convert(cfg, log); err != nil {
		log.Error().Err(err).Msg("conversion failed")
		return 1
	}
	return 0
}

func setup() (*config.Config, zerolog.Logger, io.Closer, error) {
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, zerolog.Nop(), nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), nil, fmt.Errorf("config validation: %w", err)
	}

	log, closer, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, zerolog.Nop(), nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, closer, nil
}

func convert(cfg *config.Config, log zerolog.Logger) error {
	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.Recorder.ManifestFile != "" {
		mr, err := recorder.NewManifestRecorder(cfg.Recorder.ManifestFile)
		if err != nil {
			return fmt.Errorf("init manifest recorder: %w", err)
		}
		rec = mr
		log.Info().Str("file", cfg.Recorder.ManifestFile).Msg("manifest recorder enabled")
	}
	defer rec.Close()

	d := &driver.Driver{
		Converter:     converter.NewConverter(cfg.Output.Dir, log),
		Recorder:      rec,
		InputDir:      cfg.Input.Dir,
		CurrencyPairs: cfg.CurrencyPairs,
		Years:         cfg.Years,
		Delimiter:     cfg.DelimiterRune(),
		Log:           log,
	}

	sched, err := scheduler.NewScheduler(cfg.Schedule.Cron, log)
	if err != nil {
		return err
	}

	// Context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return sched.Run(ctx, d.Run)
}
