// Package jobs provides scheduled background tasks built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// BatchRetentionJob purges stored batches older than the configured maximum
// age. It runs daily at 03:00 unless another six-field cron expression is
// configured.
//
// # Usage
//
//	retention := jobs.NewBatchRetentionJob(purgeHandler, cfg.RetentionSchedule, cfg.RetentionMaxAge, logger)
//	jobManager := jobs.NewJobManager(retention)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed purge is logged and retried on the next tick. A failed start stops
// the jobs that were already running.
package jobs
