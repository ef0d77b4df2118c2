// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// The only job is OrderStatsJob, a read-only reporter that periodically logs
// how many orders sit in each lifecycle status. It never mutates orders, so
// it can run at any frequency without affecting the engine.
//
// # Usage
//
//	job := jobs.NewOrderStatsJob(getOrdersByStatusHandler, schedule, logger)
//	if err := job.Start(); err != nil {
//		log.Fatal("Failed to start stats job:", err)
//	}
//	defer job.Stop()
//
// The schedule is a six-field cron expression (seconds included), for
// example "0 * * * * *" to report once a minute.
package jobs
