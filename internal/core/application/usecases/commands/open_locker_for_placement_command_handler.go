package commands

import (
	"context"

	"postbox/internal/core/application/usecases/cards"
	"postbox/internal/core/domain/services"
	"postbox/internal/core/ports"
)

// OpenLockerForPlacementCommandHandler signals a locker on behalf of a courier.
type OpenLockerForPlacementCommandHandler struct {
	readers    CardReaders
	gatekeeper services.LockerGatekeeper
	opener     ports.LockerOpener
}

func NewOpenLockerForPlacementCommandHandler(
	readers CardReaders,
	gatekeeper services.LockerGatekeeper,
	opener ports.LockerOpener,
) OpenLockerForPlacementCommandHandler {
	return OpenLockerForPlacementCommandHandler{readers: readers, gatekeeper: gatekeeper, opener: opener}
}

// Handle fails with parcel.ErrNotCourier unless the card holder is a courier.
func (h OpenLockerForPlacementCommandHandler) Handle(ctx context.Context, cmd OpenLockerForPlacementCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	holder, err := cards.Validate(ctx, h.readers.Users(), cmd.Serial())
	if err != nil {
		return err
	}

	if err = h.gatekeeper.AuthorizeCourier(holder); err != nil {
		return err
	}

	_ = h.opener.Open(ctx, cmd.PostBoxID(), 0, ports.OpenForPlacement)
	return nil
}
