package commands

import (
	"errors"
	"strings"

	"postbox/internal/core/domain/model/user"
	"postbox/internal/pkg/guard"
)

var ErrRegisterNfcCommandIsNotConstructed = errors.New(
	"RegisterNfcCommand must be created via NewRegisterNfcCommand constructor",
)

// RegisterNfcCommand binds a card serial to a user, replacing any previous card.
//
// Example:
//
//	cmd, err := NewRegisterNfcCommand(42, "04A1B2C3")
//	if err != nil {
//	    return err
//	}
//	serial, err := handler.Handle(ctx, cmd)
type RegisterNfcCommand struct { //nolint:recvcheck //using for validation
	userID int64
	serial string

	guard guard.ConstructorGuard
}

// NewRegisterNfcCommand validates both inputs and reports every violation.
func NewRegisterNfcCommand(userID int64, serial string) (RegisterNfcCommand, error) {
	cmd := RegisterNfcCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setSerial(serial),
	); err != nil {
		return RegisterNfcCommand{}, err
	}

	return cmd, nil
}

func (c RegisterNfcCommand) Validate() error {
	return c.guard.Validate(ErrRegisterNfcCommandIsNotConstructed)
}

func (c RegisterNfcCommand) UserID() int64  { return c.userID }
func (c RegisterNfcCommand) Serial() string { return c.serial }

func (c *RegisterNfcCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return user.ErrInvalidCardData
	}
	c.userID = userID
	return nil
}

func (c *RegisterNfcCommand) setSerial(serial string) error {
	if strings.TrimSpace(serial) == "" {
		return user.ErrSerialRequired
	}
	c.serial = serial
	return nil
}
