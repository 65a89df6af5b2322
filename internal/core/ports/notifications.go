package ports

import (
	"context"
	"errors"
)

// ErrNotificationDropped is returned by Notifier.Notify when a message could not
// be queued. Callers discard it; delivery is best effort.
var ErrNotificationDropped = errors.New("notification dropped")

// Notification is an email to a single recipient.
type Notification struct {
	Email   string
	Subject string
	Message string
}

// EmailSender delivers one email synchronously.
type EmailSender interface {
	SendSuccess(ctx context.Context, email, message, subject string) error
}

// Notifier accepts notifications without waiting for delivery. Notify never
// blocks on the mail server; failures are logged by the implementation.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Reasons a locker is asked to open.
const (
	OpenForPlacement = "placement"
	OpenForPickup    = "pickup"
)

// LockerOpener informs locker hardware that a slot should open. The core never
// waits for the hardware; the returned error only reports whether the signal
// was handed to the transport.
type LockerOpener interface {
	Open(ctx context.Context, lockerID, packageID int64, reason string) error
}
