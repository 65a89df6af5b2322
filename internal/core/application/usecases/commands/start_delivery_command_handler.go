package commands

import (
	"context"

	"postbox/internal/core/application/usecases/cards"
	"postbox/internal/core/domain/model/parcel"
)

// StartDeliveryCommandHandler handles the Pending -> In Progress transition.
// Any registered card may start a delivery; the courier role is not checked.
type StartDeliveryCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

func NewStartDeliveryCommandHandler(uowFactory LifecycleUoWFactory) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{uowFactory: uowFactory}
}

func (h StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) error {
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

	if err = p.StartDelivery(); err != nil {
		return err
	}

	if err = requireStatus(ctx, uow.StatusLabels(), parcel.InProgress); err != nil {
		return err
	}

	if err = uow.Parcels().Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
