package commands

import (
	"errors"

	"postbox/internal/core/domain/model/parcel"
	"postbox/internal/pkg/errs"
	"postbox/internal/pkg/guard"
)

var ErrCreatePackageCommandIsNotConstructed = errors.New(
	"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
)

// CreatePackageCommand registers a new Pending package for a client.
type CreatePackageCommand struct { //nolint:recvcheck //using for validation
	userID     int64
	categoryID int64
	dimensions parcel.Dimensions

	guard guard.ConstructorGuard
}

func NewCreatePackageCommand(userID, categoryID int64, height, width, depth int) (CreatePackageCommand, error) {
	cmd := CreatePackageCommand{guard: guard.NewConstructorGuard()}

	dims, dimsErr := parcel.NewDimensions(height, width, depth)
	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setCategoryID(categoryID),
		dimsErr,
	); err != nil {
		return CreatePackageCommand{}, err
	}
	cmd.dimensions = dims

	return cmd, nil
}

func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

func (c CreatePackageCommand) UserID() int64                 { return c.userID }
func (c CreatePackageCommand) CategoryID() int64             { return c.categoryID }
func (c CreatePackageCommand) Dimensions() parcel.Dimensions { return c.dimensions }

func (c *CreatePackageCommand) setUserID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("userId")
	}
	c.userID = id
	return nil
}

func (c *CreatePackageCommand) setCategoryID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("categoryId")
	}
	c.categoryID = id
	return nil
}
