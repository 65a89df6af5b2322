package queries

import (
	"context"

	"postbox/internal/core/application/usecases/cards"
	"postbox/internal/core/domain/model/parcel"
	"postbox/internal/core/domain/services"
	"postbox/internal/core/ports"
	"postbox/internal/pkg/query"
)

type GetCourierQueueQueryHandler struct {
	readers    Readers
	gatekeeper services.LockerGatekeeper
}

func NewGetCourierQueueQueryHandler(readers Readers, gatekeeper services.LockerGatekeeper) GetCourierQueueQueryHandler {
	return GetCourierQueueQueryHandler{readers: readers, gatekeeper: gatekeeper}
}

// Handle returns Pending packages oldest first. Non-couriers get parcel.ErrNotCourier.
func (h GetCourierQueueQueryHandler) Handle(ctx context.Context, q GetCourierQueueQuery) ([]PackageResponse, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	holder, err := cards.Validate(ctx, h.readers.Users(), q.Serial())
	if err != nil {
		return nil, err
	}

	if err = h.gatekeeper.AuthorizeCourier(holder); err != nil {
		return nil, err
	}

	pending, err := h.readers.Parcels().List(ctx, query.New(
		query.Eq(ports.ColumnParcelStatus, int64(parcel.Pending)),
	).OrderBy(ports.ColumnCreatedOn, query.Asc).OrderBy(ports.ColumnID, query.Asc).AsReadOnly())
	if err != nil {
		return nil, err
	}

	response := make([]PackageResponse, 0, len(pending))
	for _, p := range pending {
		response = append(response, packageResponse(p))
	}
	return response, nil
}
