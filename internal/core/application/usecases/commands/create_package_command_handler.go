package commands

import (
	"context"

	"postbox/internal/core/domain/model/parcel"
	"postbox/internal/core/domain/model/user"
	"postbox/internal/core/ports"
	"postbox/internal/pkg/errs"
	"postbox/internal/pkg/query"
)

// CreatePackageCommandHandler stores new packages after checking that the owner
// and category exist.
type CreatePackageCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreatePackageCommandHandler(uowFactory CatalogUoWFactory) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{uowFactory: uowFactory}
}

// Handle returns the id of the new package.
func (h CreatePackageCommandHandler) Handle(ctx context.Context, cmd CreatePackageCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := uow.Users().Single(ctx, query.New(query.Eq(ports.ColumnID, cmd.UserID())).AsReadOnly())
	if errs.IsKind(err, errs.KindNotFound) {
		return 0, user.ErrNotFound.WithCause(err)
	}
	if err != nil {
		return 0, err
	}

	_, err = uow.Categories().Single(ctx, query.New(query.Eq(ports.ColumnID, cmd.CategoryID())).AsReadOnly())
	if errs.IsKind(err, errs.KindNotFound) {
		return 0, parcel.ErrCategoryNotFound.WithCause(err)
	}
	if err != nil {
		return 0, err
	}

	p, err := parcel.NewParcel(cmd.UserID(), cmd.CategoryID(), cmd.Dimensions())
	if err != nil {
		return 0, err
	}

	id, err := uow.Parcels().Add(ctx, p)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
