package commands

import (
	"errors"

	"postbox/internal/pkg/errs"
	"postbox/internal/pkg/guard"
)

var ErrDeletePackageCommandIsNotConstructed = errors.New(
	"DeletePackageCommand must be created via NewDeletePackageCommand constructor",
)

// DeletePackageCommand hard-deletes a package. A locker it occupies is freed by
// the database.
type DeletePackageCommand struct { //nolint:recvcheck //using for validation
	packageID int64

	guard guard.ConstructorGuard
}

func NewDeletePackageCommand(packageID int64) (DeletePackageCommand, error) {
	if packageID <= 0 {
		return DeletePackageCommand{}, errs.NewValueIsRequiredError("packageId")
	}
	return DeletePackageCommand{packageID: packageID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeletePackageCommand) Validate() error {
	return c.guard.Validate(ErrDeletePackageCommandIsNotConstructed)
}

func (c DeletePackageCommand) PackageID() int64 { return c.packageID }
