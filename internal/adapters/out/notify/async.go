// Package notify delivers notifications off the request path.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"postbox/internal/core/ports"
)

const sendTimeout = 30 * time.Second

// AsyncNotifier queues notifications in a bounded buffer drained by one worker
// goroutine. Notify never blocks: a full queue or a closed notifier drops the
// message and returns ports.ErrNotificationDropped.
type AsyncNotifier struct {
	sender ports.EmailSender
	logger *slog.Logger
	queue  chan job

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

type job struct {
	ctx context.Context
	n   ports.Notification
}

func NewAsyncNotifier(sender ports.EmailSender, logger *slog.Logger, queueSize int) *AsyncNotifier {
	if queueSize <= 0 {
		queueSize = 1
	}

	return &AsyncNotifier{
		sender: sender,
		logger: logger.With("component", "notifier"),
		queue:  make(chan job, queueSize),
		done:   make(chan struct{}),
	}
}

// Start runs the worker until Close is called.
func (a *AsyncNotifier) Start() {
	go a.run()
}

// Notify queues n. The request context's values are kept but its cancellation
// is not, so a finished request does not abort the send.
func (a *AsyncNotifier) Notify(ctx context.Context, n ports.Notification) error {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.closed {
		a.logger.WarnContext(ctx, "notifier closed, notification dropped", "email", n.Email, "subject", n.Subject)
		return ports.ErrNotificationDropped
	}

	select {
	case a.queue <- job{ctx: context.WithoutCancel(ctx), n: n}:
		return nil
	default:
		a.logger.WarnContext(ctx, "notification queue full, notification dropped", "email", n.Email, "subject", n.Subject)
		return ports.ErrNotificationDropped
	}
}

// Close stops accepting notifications and waits for queued ones to be sent or
// for ctx to end, whichever comes first.
func (a *AsyncNotifier) Close(ctx context.Context) error {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.queue)
	}
	a.mu.Unlock()

	select {
	case <-a.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *AsyncNotifier) run() {
	defer close(a.done)

	for j := range a.queue {
		a.send(j)
	}
}

func (a *AsyncNotifier) send(j job) {
	ctx, cancel := context.WithTimeout(j.ctx, sendTimeout)
	defer cancel()

	if err := a.sender.SendSuccess(ctx, j.n.Email, j.n.Message, j.n.Subject); err != nil {
		a.logger.ErrorContext(ctx, "failed to send notification",
			"email", j.n.Email,
			"subject", j.n.Subject,
			"error", err,
		)
		return
	}

	a.logger.DebugContext(ctx, "notification sent", "email", j.n.Email, "subject", j.n.Subject)
}
