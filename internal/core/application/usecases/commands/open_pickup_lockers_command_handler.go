package commands

import (
	"context"

	"postbox/internal/core/application/usecases/cards"
	"postbox/internal/core/domain/model/parcel"
	"postbox/internal/core/domain/services"
	"postbox/internal/core/ports"
	"postbox/internal/pkg/query"
)

// OpenPickupLockersCommandHandler signals each locker holding one of the card
// holder's Delivered packages. Signals are fire-and-forget; the returned pickups
// list what was requested, not what the hardware did.
type OpenPickupLockersCommandHandler struct {
	readers    CardReaders
	gatekeeper services.LockerGatekeeper
	opener     ports.LockerOpener
}

func NewOpenPickupLockersCommandHandler(
	readers CardReaders,
	gatekeeper services.LockerGatekeeper,
	opener ports.LockerOpener,
) OpenPickupLockersCommandHandler {
	return OpenPickupLockersCommandHandler{readers: readers, gatekeeper: gatekeeper, opener: opener}
}

// Handle fails with parcel.ErrNoDeliveredPackages when there is nothing to pick up.
func (h OpenPickupLockersCommandHandler) Handle(
	ctx context.Context,
	cmd OpenPickupLockersCommand,
) ([]services.Pickup, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	holder, err := cards.Validate(ctx, h.readers.Users(), cmd.Serial())
	if err != nil {
		return nil, err
	}

	owned, err := h.readers.Parcels().List(ctx, query.New(
		query.Eq(ports.ColumnParcelOwner, holder.ID()),
		query.Eq(ports.ColumnParcelStatus, int64(parcel.Delivered)),
	).OrderBy(ports.ColumnID, query.Asc).AsReadOnly())
	if err != nil {
		return nil, err
	}

	pickups, err := h.gatekeeper.Pickups(holder, owned)
	if err != nil {
		return nil, err
	}

	for _, pickup := range pickups {
		_ = h.opener.Open(ctx, pickup.LockerID, pickup.PackageID, ports.OpenForPickup)
	}

	return pickups, nil
}
