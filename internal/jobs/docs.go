// Package jobs provides scheduled background tasks for the ordering service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with seconds).
//
// # Available Jobs
//
// ActiveOrdersMonitorJob logs the number of active orders (neither COMPLETED nor
// DELIVERED) and the age of the oldest one. Its schedule comes from MONITOR_SCHEDULE.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(activeOrdersHandler, "0 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed check is logged and the next tick runs normally. An invalid schedule
// fails StartAll.
package jobs
