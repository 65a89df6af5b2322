// Package jobs provides scheduled background tasks for the locker service.
//
// Jobs run on a single github.com/robfig/cron/v3 scheduler owned by JobManager.
//
// # Available Jobs
//
// 1. PurgeReceivedJob - deletes Received packages created before now minus the
// configured retention (RETENTION_DAYS), on the RETENTION_CRON schedule
//
// # Usage
//
//	purge := jobs.NewPurgeReceivedJob(purgeHandler, "0 3 * * *", 30*24*time.Hour, logger)
//	jobManager := jobs.NewJobManager(purge, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll(ctx)
//
// # Error Handling
//
// - Failed runs are logged and retried on the next tick
// - Invalid schedules fail StartAll before anything runs
package jobs
