package commands

import (
	"context"

	"postbox/internal/core/ports"
	"postbox/internal/pkg/query"
)

type DeletePackageCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeletePackageCommandHandler(uowFactory CatalogUoWFactory) DeletePackageCommandHandler {
	return DeletePackageCommandHandler{uowFactory: uowFactory}
}

// Handle fails with parcel.ErrNotFound when the package does not exist.
func (h DeletePackageCommandHandler) Handle(ctx context.Context, cmd DeletePackageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.Parcels().Delete(ctx, query.New(query.Eq(ports.ColumnID, cmd.PackageID()))); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
