package jobs

import (
	"context"
	"log/slog"

	"github.com/camdiaz/xuma/internal/core/application/usecases/queries"
	"github.com/camdiaz/xuma/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// OrderStatsJob periodically logs per-status order counts. It reads through
// the query layer and never mutates stored orders.
type OrderStatsJob struct {
	handler  queries.GetOrdersByStatusQueryHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewOrderStatsJob creates a stats job with the given six-field cron
// schedule, for example "0 * * * * *" for once a minute.
func NewOrderStatsJob(
	handler queries.GetOrdersByStatusQueryHandler,
	schedule string,
	logger *slog.Logger,
) *OrderStatsJob {
	return &OrderStatsJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "order_stats_job"),
	}
}

// Start schedules the job. Returns an error if the cron expression is
// malformed.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.report)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job.
func (j *OrderStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}

func (j *OrderStatsJob) report() {
	ctx := context.Background()
	attrs := make([]any, 0, 8)

	for _, status := range []order.Status{
		order.Pending, order.Processing, order.Completed, order.Cancelled,
	} {
		query, err := queries.NewGetOrdersByStatusQuery(status)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed to build query", "error", err)
			return
		}

		orders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed", "status", status.String(), "error", err)
			return
		}

		attrs = append(attrs, status.String(), len(orders))
	}

	j.logger.InfoContext(ctx, "Order counts by status", attrs...)
}
