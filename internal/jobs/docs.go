// Package jobs provides scheduled background tasks for the dispatch service.
//
// Jobs are cron-based and use github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// ZoneSweepJob re-checks every located driver against the exclusion zones,
// by default every 30 seconds ("*/30 * * * * *"). It shares the
// ZoneEntryTracker with the location update handler, so a driver that is
// already known to be inside a zone is not alerted twice.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(sweepHandler, cfg.ZoneSweepSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing sweep is logged and retried on the next tick.
package jobs
