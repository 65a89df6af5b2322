package commands

import (
	"errors"
	"strings"

	"postbox/internal/core/domain/model/user"
	"postbox/internal/pkg/errs"
	"postbox/internal/pkg/guard"
)

var ErrStartDeliveryCommandIsNotConstructed = errors.New(
	"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
)

// StartDeliveryCommand moves a Pending package to In Progress when a courier
// presents a card.
type StartDeliveryCommand struct { //nolint:recvcheck //using for validation
	packageID int64
	serial    string

	guard guard.ConstructorGuard
}

func NewStartDeliveryCommand(packageID int64, serial string) (StartDeliveryCommand, error) {
	cmd := StartDeliveryCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setSerial(serial),
	); err != nil {
		return StartDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

func (c StartDeliveryCommand) PackageID() int64 { return c.packageID }
func (c StartDeliveryCommand) Serial() string   { return c.serial }

func (c *StartDeliveryCommand) setPackageID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("packageId")
	}
	c.packageID = id
	return nil
}

func (c *StartDeliveryCommand) setSerial(serial string) error {
	if strings.TrimSpace(serial) == "" {
		return user.ErrSerialRequired
	}
	c.serial = serial
	return nil
}
