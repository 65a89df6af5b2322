package jobs

import (
	"context"
	"log/slog"
	"time"

	"postbox/internal/core/application/usecases/commands"
)

// PurgeHandler removes Received packages past retention.
type PurgeHandler interface {
	Handle(ctx context.Context, cmd commands.PurgeReceivedCommand) (int, error)
}

// PurgeReceivedJob deletes Received packages older than the retention period
// on a cron schedule.
type PurgeReceivedJob struct {
	handler   PurgeHandler
	schedule  string
	retention time.Duration
	timeout   time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// NewPurgeReceivedJob creates the retention job. schedule is a standard
// five-field cron expression.
func NewPurgeReceivedJob(
	handler PurgeHandler,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *PurgeReceivedJob {
	return &PurgeReceivedJob{
		handler:   handler,
		schedule:  schedule,
		retention: retention,
		timeout:   time.Minute,
		now:       time.Now,
		logger:    logger.With("component", "purge_received_job"),
	}
}

// Register adds the job to c.
func (j *PurgeReceivedJob) Register(c cronScheduler) error {
	_, err := c.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.logger.InfoContext(context.Background(), "Purge received job scheduled",
		"schedule", j.schedule,
		"retention", j.retention.String(),
	)
	return nil
}

func (j *PurgeReceivedJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	cmd, err := commands.NewPurgeReceivedCommand(j.now(), j.retention)
	if err != nil {
		j.logger.ErrorContext(ctx, "Purge received job misconfigured", "error", err)
		return
	}

	removed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Purge received job failed", "error", err)
		return
	}

	if removed > 0 {
		j.logger.InfoContext(ctx, "Purged received packages",
			"removed", removed,
			"olderThan", cmd.OlderThan(),
		)
	}
}
