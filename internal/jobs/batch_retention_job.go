package jobs

import (
	"context"
	"time"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/application/usecases/commands"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultRetentionSchedule runs the purge daily at 03:00 (cron with seconds).
const DefaultRetentionSchedule = "0 0 3 * * *"

type batchPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeExpiredBatchesCommand) (int64, error)
}

// BatchRetentionJob deletes stored batches older than maxAge on a schedule.
type BatchRetentionJob struct {
	handler  batchPurger
	schedule string
	maxAge   time.Duration
	now      func() time.Time
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewBatchRetentionJob creates the job. An empty schedule means DefaultRetentionSchedule.
func NewBatchRetentionJob(handler batchPurger, schedule string, maxAge time.Duration, log *zap.Logger) *BatchRetentionJob {
	if schedule == "" {
		schedule = DefaultRetentionSchedule
	}

	return &BatchRetentionJob{
		handler:  handler,
		schedule: schedule,
		maxAge:   maxAge,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.Component(log, "batch_retention_job"),
	}
}

// Start registers the purge with the scheduler and starts it.
func (j *BatchRetentionJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Batch retention job started",
		zap.String("schedule", j.schedule),
		zap.Duration("max_age", j.maxAge))
	return nil
}

// RunOnce purges every batch created before now minus maxAge.
func (j *BatchRetentionJob) RunOnce(ctx context.Context) (int64, error) {
	cutoff := j.now().Add(-j.maxAge)

	cmd, err := commands.NewPurgeExpiredBatchesCommand(cutoff)
	if err != nil {
		j.logger.Error("Batch retention job failed", zap.Error(err))
		return 0, err
	}

	deleted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error("Batch retention job failed", zap.Time("cutoff", cutoff), zap.Error(err))
		return 0, err
	}

	if deleted > 0 {
		j.logger.Info("Expired batches purged", zap.Int64("deleted", deleted), zap.Time("cutoff", cutoff))
	}
	return deleted, nil
}

// Stop stops the scheduler and waits for a running purge to finish.
func (j *BatchRetentionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Batch retention job stopped")
}
