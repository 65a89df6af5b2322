package commands

import (
	"context"

	"postbox/internal/core/domain/model/parcel"
	"postbox/internal/core/ports"
	"postbox/internal/pkg/errs"
	"postbox/internal/pkg/query"
)

type PurgeReceivedCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewPurgeReceivedCommandHandler(uowFactory CatalogUoWFactory) PurgeReceivedCommandHandler {
	return PurgeReceivedCommandHandler{uowFactory: uowFactory}
}

// Handle returns how many packages were removed.
func (h PurgeReceivedCommandHandler) Handle(ctx context.Context, cmd PurgeReceivedCommand) (int, error) {
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

	stale, err := uow.Parcels().List(ctx, query.New(
		query.Eq(ports.ColumnParcelStatus, int64(parcel.Received)),
		query.Lt(ports.ColumnCreatedOn, cmd.OlderThan()),
	))
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	ids := make([]int64, 0, len(stale))
	for _, p := range stale {
		ids = append(ids, p.ID())
	}

	err = uow.Parcels().Delete(ctx, query.New(query.In(ports.ColumnID, ids)))
	if errs.IsKind(err, errs.KindNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(ids), nil
}
