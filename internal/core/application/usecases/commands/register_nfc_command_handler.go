package commands

import (
	"context"
	"errors"

	"postbox/internal/core/domain/model/user"
	"postbox/internal/core/ports"
	"postbox/internal/pkg/errs"
	"postbox/internal/pkg/query"
)

// errSerialIndexViolation is what the user repository reports when the unique
// serial index rejects a write.
var errSerialIndexViolation = errs.Conflict("user.ADD_ERROR", "")

// RegisterNfcCommandHandler binds NFC cards to users.
//
// Rules:
//   - a serial held by another user is rejected with user.ErrSerialTaken
//   - re-registering the serial the user already holds succeeds without a write
//   - an unknown user is user.ErrNotFound
type RegisterNfcCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewRegisterNfcCommandHandler(uowFactory UserUoWFactory) RegisterNfcCommandHandler {
	return RegisterNfcCommandHandler{uowFactory: uowFactory}
}

// Handle returns the serial now bound to the user.
func (h RegisterNfcCommandHandler) Handle(ctx context.Context, cmd RegisterNfcCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.Users()

	holder, err := users.Single(ctx, query.New(query.Eq(ports.ColumnUserNfcSerial, cmd.Serial())))
	switch {
	case err == nil && holder.ID() != cmd.UserID():
		return "", user.ErrSerialTaken
	case err != nil && !errs.IsKind(err, errs.KindNotFound):
		return "", err
	}

	u, err := users.Single(ctx, query.New(query.Eq(ports.ColumnID, cmd.UserID())))
	if errs.IsKind(err, errs.KindNotFound) {
		return "", user.ErrNotFound.WithCause(err)
	}
	if err != nil {
		return "", err
	}

	changed, err := u.BindNfc(cmd.Serial())
	if err != nil {
		return "", err
	}
	if !changed {
		return cmd.Serial(), nil
	}

	if err = users.Update(ctx, u); err != nil {
		if errors.Is(err, errSerialIndexViolation) {
			return "", user.ErrSerialTaken.WithCause(err)
		}
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return cmd.Serial(), nil
}
