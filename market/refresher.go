package market

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Refresher triggers periodic list reloads on a cron schedule
// The callback runs on the cron goroutine and must only hand off work
type Refresher struct {
	cron *cron.Cron
	log  zerolog.Logger
}

// NewRefresher creates a stopped refresher
func NewRefresher(log zerolog.Logger) *Refresher {
	return &Refresher{
		cron: cron.New(),
		log:  log.With().Str("component", "refresher").Logger(),
	}
}

// Schedule registers fn under spec, e.g. "@every 60s" or "*/5 * * * *"
func (r *Refresher) Schedule(spec string, fn func()) error {
	_, err := r.cron.AddFunc(spec, func() {
		r.log.Debug().Str("schedule", spec).Msg("refresh tick")
		fn()
	})
	if err != nil {
		return fmt.Errorf("refresh schedule %q: %w", spec, err)
	}
	r.log.Info().Str("schedule", spec).Msg("refresh registered")
	return nil
}

// Start runs the schedule in the background
func (r *Refresher) Start() {
	r.cron.Start()
}

// Stop halts the schedule and waits for a running callback
func (r *Refresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

// ValidateSchedule reports whether spec parses as a cron schedule
func ValidateSchedule(spec string) error {
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("refresh schedule %q: %w", spec, err)
	}
	return nil
}
