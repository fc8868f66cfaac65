package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"sales-insight-backend/config"
)

// DriftChecker is implemented by datastore.JSONStore.
type DriftChecker interface {
	Drifted() (bool, error)
	Path() string
}

// NewScheduler runs the data file drift check on cfg.Data.WatchSchedule. It
// returns nil when the schedule is empty. The loaded data is never reloaded;
// the job only tells operators a restart is needed.
func NewScheduler(lc fx.Lifecycle, cfg *config.Config, checker DriftChecker) (*cron.Cron, error) {
	schedule := cfg.Data.WatchSchedule
	if schedule == "" {
		log.Info().Msg("Data file drift check disabled")
		return nil, nil
	}

	parser := cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	c := cron.New(cron.WithParser(parser))

	_, err := c.AddFunc(schedule, func() {
		CheckDrift(checker)
	})
	if err != nil {
		log.Error().Err(err).Str("schedule", schedule).Msg("Failed to add drift check job")
		return nil, err
	}
	log.Info().Str("schedule", schedule).Str("file", checker.Path()).Msg("Scheduled data file drift check")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msg("Starting cron scheduler")
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Stopping cron scheduler...")
			stopCtx := c.Stop()
			select {
			case <-stopCtx.Done():
				log.Info().Msg("Cron scheduler stopped gracefully.")
				return nil
			case <-ctx.Done():
				log.Error().Msg("Context cancelled while waiting for cron scheduler to stop.")
				return ctx.Err()
			}
		},
	})

	return c, nil
}

// CheckDrift logs a warning when the data file changed since startup and
// reports whether it did.
func CheckDrift(checker DriftChecker) bool {
	drifted, err := checker.Drifted()
	if err != nil {
		log.Error().Err(err).Str("file", checker.Path()).Msg("Failed to check data file for changes")
		return false
	}
	if drifted {
		log.Warn().Str("file", checker.Path()).Msg("Data file changed on disk; restart the service to serve the new data")
	}
	return drifted
}
