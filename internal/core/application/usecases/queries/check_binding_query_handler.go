package queries

import (
	"context"

	"postbox/internal/core/application/usecases/cards"
	"postbox/internal/core/domain/model/parcel"
	"postbox/internal/core/domain/services"
	"postbox/internal/core/ports"
	"postbox/internal/pkg/query"
)

type CheckBindingQueryHandler struct {
	readers    Readers
	gatekeeper services.LockerGatekeeper
}

func NewCheckBindingQueryHandler(readers Readers, gatekeeper services.LockerGatekeeper) CheckBindingQueryHandler {
	return CheckBindingQueryHandler{readers: readers, gatekeeper: gatekeeper}
}

// Handle reports whether the card holder owns the package waiting in the locker.
// It fails with parcel.ErrNotFound when that package is not Delivered there.
func (h CheckBindingQueryHandler) Handle(ctx context.Context, q CheckBindingQuery) (bool, error) {
	if err := q.Validate(); err != nil {
		return false, err
	}

	holder, err := cards.Resolve(ctx, h.readers.Users(), q.Serial())
	if err != nil {
		return false, err
	}

	inLocker, err := h.readers.Parcels().List(ctx, query.New(
		query.Eq(ports.ColumnParcelPostBox, q.PostBoxID()),
		query.Eq(ports.ColumnParcelStatus, int64(parcel.Delivered)),
	).AsReadOnly())
	if err != nil {
		return false, err
	}

	return h.gatekeeper.CheckBinding(inLocker, q.PostBoxID(), q.PackageID(), holder)
}
