// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the ordering service.
//
// # Available Jobs
//
// 1. OutboxDispatcherJob - Runs every second to relay committed domain events
// from the outbox table to the message broker
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(outboxRepo, publisher, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatcher uses the cron expression "* * * * * *" which means it runs
// every second. This frequency keeps event delivery latency low while the
// outbox table itself guarantees no event is lost.
//
// # Error Handling
//
// - A failed publish stops the current batch; unsent rows are retried on the
// next tick, preserving per-key ordering
// - Failed job starts will stop any already running jobs
package jobs
