package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Job is one full batch run.
type Job func(ctx context.Context) error

var parser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Scheduler re-runs a job at cron activations. Runs never overlap: the next
// activation is computed only after the previous run has returned.
type Scheduler struct {
	Schedule cron.Schedule // nil means run once
	Log      zerolog.Logger
}

// NewScheduler parses spec. An empty spec yields a scheduler that runs the job once.
func NewScheduler(spec string, log zerolog.Logger) (*Scheduler, error) {
	s := &Scheduler{Log: log}
	if spec == "" {
		return s, nil
	}
	sched, err := parser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("parse schedule %q: %w", spec, err)
	}
	s.Schedule = sched
	return s, nil
}

// Run executes job according to the schedule. It returns the job's first
// error, or nil once ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, job Job) error {
	if s.Schedule == nil {
		return job(ctx)
	}
	for {
		next := s.Schedule.Next(time.Now())
		if next.IsZero() {
			s.Log.Warn().Msg("schedule has no further activations")
			return nil
		}
		s.Log.Info().Time("next_run", next).Msg("waiting for next run")

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			s.Log.Info().Msg("scheduler stopped")
			return nil
		case <-timer.C:
		}

		if err := job(ctx); err != nil {
			if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				s.Log.Info().Msg("scheduler stopped during run")
				return nil
			}
			return err
		}
	}
}
