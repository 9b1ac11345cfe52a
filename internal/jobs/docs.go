// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order service.
//
// # Available Jobs
//
// 1. StatisticsSnapshotJob - Runs every fifteen seconds to recompute aggregated
// order statistics and keep the statistics cache warm for polling dashboards
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getStatisticsHandler, logger)
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
// The snapshot job uses the cron expression "*/15 * * * * *", matching the
// fifteen-second polling cadence of the admin dashboard.
//
// # Error Handling
//
// - Snapshot failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
