package jobs

import (
	"context"
	"fmt"
	"time"

	"tastyfood/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ActiveOrdersReader lists orders that are neither completed nor delivered.
type ActiveOrdersReader interface {
	Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.OrderResponse, error)
}

// MonitorReport summarizes the active orders at one point in time.
type MonitorReport struct {
	Active int
	// OldestOrderNo and OldestAge are empty when there are no active orders.
	OldestOrderNo string
	OldestAge     time.Duration
}

// ActiveOrdersMonitorJob periodically logs how many orders are waiting and how long
// the oldest of them has been waiting.
type ActiveOrdersMonitorJob struct {
	reader   ActiveOrdersReader
	schedule string
	timeout  time.Duration
	now      func() time.Time
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewActiveOrdersMonitorJob creates the job. schedule is a six-field cron expression
// (seconds first), e.g. "0 * * * * *" for once a minute.
func NewActiveOrdersMonitorJob(reader ActiveOrdersReader, schedule string, logger *zap.Logger) *ActiveOrdersMonitorJob {
	return &ActiveOrdersMonitorJob{
		reader:   reader,
		schedule: schedule,
		timeout:  10 * time.Second,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With(zap.String("component", "active_orders_monitor_job")),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *ActiveOrdersMonitorJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()

		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.Error("active orders monitor failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("active orders monitor started", zap.String("schedule", j.schedule))
	return nil
}

// Stop stops the scheduler and waits for a running check to finish.
func (j *ActiveOrdersMonitorJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("active orders monitor stopped")
}

// RunOnce reads the active orders and logs a report.
func (j *ActiveOrdersMonitorJob) RunOnce(ctx context.Context) (MonitorReport, error) {
	active, err := j.reader.Handle(ctx, queries.NewGetActiveOrdersQuery())
	if err != nil {
		return MonitorReport{}, err
	}

	report := MonitorReport{Active: len(active)}
	var oldest *queries.OrderResponse
	for i := range active {
		if oldest == nil || active[i].OrderedAt.Before(oldest.OrderedAt) {
			oldest = &active[i]
		}
	}
	if oldest != nil {
		report.OldestOrderNo = oldest.OrderNo
		report.OldestAge = j.now().Sub(oldest.OrderedAt)
	}

	j.logger.Info("active orders",
		zap.Int("count", report.Active),
		zap.String("oldest_order_no", report.OldestOrderNo),
		zap.Duration("oldest_age", report.OldestAge),
	)
	return report, nil
}
