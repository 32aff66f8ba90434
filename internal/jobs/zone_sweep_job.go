package jobs

import (
	"context"
	"log/slog"

	"fleet/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultZoneSweepSchedule runs the sweep every 30 seconds.
const DefaultZoneSweepSchedule = "*/30 * * * * *"

// ZoneSweepJob periodically re-checks every located driver against the
// exclusion zones. Zones created after a driver already stood in them raise
// their entry alert on the next sweep.
type ZoneSweepJob struct {
	handler  commands.SweepDriverZonesCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewZoneSweepJob creates the sweep job. An empty schedule falls back to
// DefaultZoneSweepSchedule.
func NewZoneSweepJob(handler commands.SweepDriverZonesCommandHandler, schedule string, logger *slog.Logger) *ZoneSweepJob {
	if schedule == "" {
		schedule = DefaultZoneSweepSchedule
	}
	return &ZoneSweepJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "zone_sweep_job"),
	}
}

// Start registers the sweep with the cron scheduler and starts it.
func (j *ZoneSweepJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Zone sweep job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *ZoneSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Zone sweep job stopped")
}

func (j *ZoneSweepJob) run() {
	ctx := context.Background()
	emitted, err := j.handler.Handle(ctx, commands.NewSweepDriverZonesCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Zone sweep job failed", "error", err)
		return
	}
	if emitted > 0 {
		j.logger.InfoContext(ctx, "Zone sweep raised entry alerts", "alerts", emitted)
	}
}
