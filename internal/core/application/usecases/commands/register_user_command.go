package commands

import (
	"errors"

	"postbox/internal/core/domain/model/user"
	"postbox/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterCourierCommand or NewRegisterClientCommand",
	)
)

// RegisterUserCommand creates a user with a single role.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	email string
	role  user.RoleName

	guard guard.ConstructorGuard
}

// NewRegisterCourierCommand registers email as a courier.
func NewRegisterCourierCommand(email string) (RegisterUserCommand, error) {
	return newRegisterUserCommand(email, user.RoleCourier)
}

// NewRegisterClientCommand registers email as a client.
func NewRegisterClientCommand(email string) (RegisterUserCommand, error) {
	return newRegisterUserCommand(email, user.RoleClient)
}

func newRegisterUserCommand(email string, role user.RoleName) (RegisterUserCommand, error) {
	if !user.IsValidEmail(email) {
		return RegisterUserCommand{}, user.ErrInvalidEmail
	}

	return RegisterUserCommand{
		email: email,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Email() string       { return c.email }
func (c RegisterUserCommand) Role() user.RoleName { return c.role }
