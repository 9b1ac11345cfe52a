package jobs

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StatisticsSnapshotJob periodically recomputes the aggregated order
// statistics. Dashboards poll the statistics endpoint every few seconds;
// the job keeps the cache warm so polls never pay the aggregation cost.
type StatisticsSnapshotJob struct {
	handler queries.GetStatisticsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatisticsSnapshotJob creates a job that refreshes statistics every
// fifteen seconds, matching the dashboard polling cadence.
func NewStatisticsSnapshotJob(handler queries.GetStatisticsQueryHandler, logger *slog.Logger) *StatisticsSnapshotJob {
	return &StatisticsSnapshotJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "statistics_snapshot_job"),
	}
}

// Start begins the statistics snapshot job to run every fifteen seconds.
func (j *StatisticsSnapshotJob) Start() error {
	_, err := j.cron.AddFunc("*/15 * * * * *", func() {
		ctx := context.Background()
		// Force a recompute: a plain query would be answered by the
		// still-valid snapshot and never touch the database.
		query := queries.NewForceRefreshGetStatisticsQuery()

		stats, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Statistics snapshot job failed", "error", err)
			return
		}

		j.logger.DebugContext(ctx, "Statistics snapshot refreshed",
			"total_orders", stats.TotalOrders,
			"total_revenue", stats.TotalRevenue.String(),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Statistics snapshot job started (running every 15 seconds)")
	return nil
}

// Stop stops the statistics snapshot job.
func (j *StatisticsSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Statistics snapshot job stopped")
}
