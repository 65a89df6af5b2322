package commands

import (
	"errors"
	"strings"

	"postbox/internal/core/domain/model/user"
	"postbox/internal/pkg/errs"
	"postbox/internal/pkg/guard"
)

var ErrReceivePackageCommandIsNotConstructed = errors.New(
	"ReceivePackageCommand must be created via NewReceivePackageCommand constructor",
)

// ReceivePackageCommand records that a client took a Delivered package out of
// its locker.
type ReceivePackageCommand struct { //nolint:recvcheck //using for validation
	packageID int64
	serial    string

	guard guard.ConstructorGuard
}

func NewReceivePackageCommand(packageID int64, serial string) (ReceivePackageCommand, error) {
	cmd := ReceivePackageCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setSerial(serial),
	); err != nil {
		return ReceivePackageCommand{}, err
	}

	return cmd, nil
}

func (c ReceivePackageCommand) Validate() error {
	return c.guard.Validate(ErrReceivePackageCommandIsNotConstructed)
}

func (c ReceivePackageCommand) PackageID() int64 { return c.packageID }
func (c ReceivePackageCommand) Serial() string   { return c.serial }

func (c *ReceivePackageCommand) setPackageID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("packageId")
	}
	c.packageID = id
	return nil
}

func (c *ReceivePackageCommand) setSerial(serial string) error {
	if strings.TrimSpace(serial) == "" {
		return user.ErrSerialRequired
	}
	c.serial = serial
	return nil
}
