package commands

import (
	"context"
	"errors"
	"strings"

	"postbox/internal/core/domain/model/user"
	"postbox/internal/core/ports"
	"postbox/internal/pkg/errs"
	"postbox/internal/pkg/query"
)

// errEmailIndexViolation is what the user repository reports when the unique
// email index rejects an insert.
var errEmailIndexViolation = errs.Conflict("user.ADD_ERROR", "")

// RegisterUserCommandHandler inserts a user and its role link in one transaction
// and sends a welcome email after commit.
type RegisterUserCommandHandler struct {
	uowFactory RegistrationUoWFactory
	notifier   ports.Notifier
}

func NewRegisterUserCommandHandler(uowFactory RegistrationUoWFactory, notifier ports.Notifier) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

// Handle returns the stored user with its role.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := uow.Users().Single(ctx, query.New(query.Eq(ports.ColumnUserEmail, cmd.Email())).AsReadOnly())
	switch {
	case err == nil:
		return nil, user.ErrAlreadyExists
	case !errs.IsKind(err, errs.KindNotFound):
		return nil, err
	}

	role, err := uow.Roles().Single(ctx, query.New(query.Eq(ports.ColumnRoleName, string(cmd.Role()))).AsReadOnly())
	if errs.IsKind(err, errs.KindNotFound) {
		return nil, user.ErrRoleNotFound.WithCause(err)
	}
	if err != nil {
		return nil, err
	}

	u, err := user.NewUser(cmd.Email())
	if err != nil {
		return nil, err
	}

	if _, err = uow.Users().Add(ctx, u); err != nil {
		if errors.Is(err, errEmailIndexViolation) {
			return nil, user.ErrAlreadyExists.WithCause(err)
		}
		return nil, err
	}

	link, err := user.NewAssignment(u.ID(), role.ID())
	if err != nil {
		return nil, err
	}
	if _, err = uow.Assignments().Add(ctx, link); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	registered, err := user.RestoreUser(u.Entity, u.Email(), nil, []*user.Role{role})
	if err != nil {
		return nil, err
	}

	name := strings.ToLower(string(cmd.Role()))
	_ = h.notifier.Notify(ctx, ports.Notification{
		Email:   u.Email(),
		Subject: string(cmd.Role()) + " Registration Successful",
		Message: "You have been successfully registered as a " + name + ".",
	})

	return registered, nil
}
