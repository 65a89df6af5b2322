package commands

import (
	"errors"

	"postbox/internal/pkg/guard"
)

var ErrOpenPickupLockersCommandIsNotConstructed = errors.New(
	"OpenPickupLockersCommand must be created via NewOpenPickupLockersCommand constructor",
)

// OpenPickupLockersCommand opens every locker holding a Delivered package of
// the card holder.
type OpenPickupLockersCommand struct {
	serial string

	guard guard.ConstructorGuard
}

// NewOpenPickupLockersCommand accepts any serial; an unknown or blank one fails
// at lookup with user.ErrCardNotFound.
func NewOpenPickupLockersCommand(serial string) OpenPickupLockersCommand {
	return OpenPickupLockersCommand{serial: serial, guard: guard.NewConstructorGuard()}
}

func (c OpenPickupLockersCommand) Validate() error {
	return c.guard.Validate(ErrOpenPickupLockersCommandIsNotConstructed)
}

func (c OpenPickupLockersCommand) Serial() string { return c.serial }
