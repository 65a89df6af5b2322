package commands

import (
	"errors"
	"strings"

	"postbox/internal/core/domain/model/parcel"
	"postbox/internal/core/domain/model/user"
	"postbox/internal/pkg/errs"
	"postbox/internal/pkg/guard"
)

var ErrPlaceInLockerCommandIsNotConstructed = errors.New(
	"PlaceInLockerCommand must be created via NewPlaceInLockerCommand constructor",
)

// PlaceInLockerCommand records that a courier put an In Progress package into
// a locker slot.
//
// Example:
//
//	cmd, err := NewPlaceInLockerCommand(17, 3, "04C0FFEE")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd) // package 17 is Delivered into locker 3
type PlaceInLockerCommand struct { //nolint:recvcheck //using for validation
	packageID int64
	postBoxID int64
	serial    string

	guard guard.ConstructorGuard
}

func NewPlaceInLockerCommand(packageID, postBoxID int64, serial string) (PlaceInLockerCommand, error) {
	cmd := PlaceInLockerCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setPostBoxID(postBoxID),
		cmd.setSerial(serial),
	); err != nil {
		return PlaceInLockerCommand{}, err
	}

	return cmd, nil
}

func (c PlaceInLockerCommand) Validate() error {
	return c.guard.Validate(ErrPlaceInLockerCommandIsNotConstructed)
}

func (c PlaceInLockerCommand) PackageID() int64 { return c.packageID }
func (c PlaceInLockerCommand) PostBoxID() int64 { return c.postBoxID }
func (c PlaceInLockerCommand) Serial() string   { return c.serial }

func (c *PlaceInLockerCommand) setPackageID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("packageId")
	}
	c.packageID = id
	return nil
}

func (c *PlaceInLockerCommand) setPostBoxID(id int64) error {
	if id <= 0 {
		return parcel.ErrInvalidPostBox
	}
	c.postBoxID = id
	return nil
}

func (c *PlaceInLockerCommand) setSerial(serial string) error {
	if strings.TrimSpace(serial) == "" {
		return user.ErrSerialRequired
	}
	c.serial = serial
	return nil
}
