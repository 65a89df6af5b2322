package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

type cronScheduler interface {
	AddFunc(spec string, cmd func()) (cron.EntryID, error)
}

// JobManager owns the scheduler all background jobs run on.
type JobManager struct {
	cron          *cron.Cron
	purgeReceived *PurgeReceivedJob
	logger        *slog.Logger
}

// NewJobManager creates a manager for the given jobs. A job that panics is
// recovered and logged by the scheduler.
func NewJobManager(purgeReceived *PurgeReceivedJob, logger *slog.Logger) *JobManager {
	logger = logger.With("component", "job_manager")

	return &JobManager{
		cron: cron.New(cron.WithChain(
			cron.Recover(cron.VerbosePrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError))),
		)),
		purgeReceived: purgeReceived,
		logger:        logger,
	}
}

// StartAll registers every job and starts the scheduler.
// Returns an error if any job has an invalid schedule.
func (jm *JobManager) StartAll() error {
	if err := jm.purgeReceived.Register(jm.cron); err != nil {
		return fmt.Errorf("failed to start purge received job: %w", err)
	}

	jm.cron.Start()
	jm.logger.InfoContext(context.Background(), "Jobs started", "entries", len(jm.cron.Entries()))
	return nil
}

// StopAll stops the scheduler and waits for running jobs to finish or ctx to end.
func (jm *JobManager) StopAll(ctx context.Context) {
	select {
	case <-jm.cron.Stop().Done():
	case <-ctx.Done():
		jm.logger.WarnContext(ctx, "Jobs still running at shutdown")
	}
	jm.logger.InfoContext(ctx, "Jobs stopped")
}
