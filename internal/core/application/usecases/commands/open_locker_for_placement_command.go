package commands

import (
	"errors"

	"postbox/internal/core/domain/model/parcel"
	"postbox/internal/pkg/guard"
)

var ErrOpenLockerForPlacementCommandIsNotConstructed = errors.New(
	"OpenLockerForPlacementCommand must be created via NewOpenLockerForPlacementCommand constructor",
)

// OpenLockerForPlacementCommand lets a courier open an empty slot before
// placing a package. No package state changes.
type OpenLockerForPlacementCommand struct {
	serial    string
	postBoxID int64

	guard guard.ConstructorGuard
}

func NewOpenLockerForPlacementCommand(serial string, postBoxID int64) (OpenLockerForPlacementCommand, error) {
	if postBoxID <= 0 {
		return OpenLockerForPlacementCommand{}, parcel.ErrInvalidPostBox
	}
	return OpenLockerForPlacementCommand{
		serial:    serial,
		postBoxID: postBoxID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c OpenLockerForPlacementCommand) Validate() error {
	return c.guard.Validate(ErrOpenLockerForPlacementCommandIsNotConstructed)
}

func (c OpenLockerForPlacementCommand) Serial() string   { return c.serial }
func (c OpenLockerForPlacementCommand) PostBoxID() int64 { return c.postBoxID }
