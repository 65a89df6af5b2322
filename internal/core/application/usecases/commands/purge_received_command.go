package commands

import (
	"errors"
	"time"

	"postbox/internal/pkg/errs"
	"postbox/internal/pkg/guard"
)

var ErrPurgeReceivedCommandIsNotConstructed = errors.New(
	"PurgeReceivedCommand must be created via NewPurgeReceivedCommand constructor",
)

// PurgeReceivedCommand removes Received packages created before a cutoff.
type PurgeReceivedCommand struct {
	olderThan time.Time

	guard guard.ConstructorGuard
}

// NewPurgeReceivedCommand targets packages created before now minus retention.
func NewPurgeReceivedCommand(now time.Time, retention time.Duration) (PurgeReceivedCommand, error) {
	if retention <= 0 {
		return PurgeReceivedCommand{}, errs.NewValueIsInvalidError("retention")
	}
	return PurgeReceivedCommand{
		olderThan: now.Add(-retention).UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeReceivedCommand) Validate() error {
	return c.guard.Validate(ErrPurgeReceivedCommandIsNotConstructed)
}

func (c PurgeReceivedCommand) OlderThan() time.Time { return c.olderThan }
