package commands

import (
	"context"
	"fmt"

	"postbox/internal/core/application/usecases/cards"
	"postbox/internal/core/domain/model/locker"
	"postbox/internal/core/domain/model/parcel"
	"postbox/internal/core/ports"
)

// PlaceInLockerCommandHandler handles the In Progress -> Delivered transition.
//
// The locker slot is claimed with a conditional write in the same transaction
// as the package update, so a slot holding another package fails the whole
// command with locker.ErrOccupied. After commit the owner is emailed and the
// locker is asked to open; neither can fail the command.
type PlaceInLockerCommandHandler struct {
	uowFactory LifecycleUoWFactory
	notifier   ports.Notifier
	opener     ports.LockerOpener
}

func NewPlaceInLockerCommandHandler(
	uowFactory LifecycleUoWFactory,
	notifier ports.Notifier,
	opener ports.LockerOpener,
) PlaceInLockerCommandHandler {
	return PlaceInLockerCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		opener:     opener,
	}
}

func (h PlaceInLockerCommandHandler) Handle(ctx context.Context, cmd PlaceInLockerCommand) error {
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

	if _, err := cards.Resolve(ctx, uow.Users(), cmd.Serial()); err != nil {
		return err
	}

	p, err := loadParcel(ctx, uow.Parcels(), cmd.PackageID())
	if err != nil {
		return err
	}

	if err = p.PlaceInLocker(cmd.PostBoxID()); err != nil {
		return err
	}

	if err = requireStatus(ctx, uow.StatusLabels(), parcel.Delivered); err != nil {
		return err
	}

	slot, err := locker.NewLocker(cmd.PostBoxID())
	if err != nil {
		return err
	}
	if err = slot.Occupy(p.ID()); err != nil {
		return err
	}
	if err = uow.Lockers().Occupy(ctx, slot); err != nil {
		return err
	}

	if err = uow.Parcels().Update(ctx, p); err != nil {
		return err
	}

	owner, err := loadOwner(ctx, uow.Users(), p)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Notify(ctx, ports.Notification{
		Email:   owner.Email(),
		Subject: placedSubject,
		Message: fmt.Sprintf(placedMessage, cmd.PostBoxID()),
	})
	_ = h.opener.Open(ctx, cmd.PostBoxID(), p.ID(), ports.OpenForPlacement)

	return nil
}
