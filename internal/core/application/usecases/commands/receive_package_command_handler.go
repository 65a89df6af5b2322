package commands

import (
	"context"

	"postbox/internal/core/application/usecases/cards"
	"postbox/internal/core/domain/model/parcel"
	"postbox/internal/core/domain/services"
	"postbox/internal/core/ports"
	"postbox/internal/pkg/errs"
	"postbox/internal/pkg/query"
)

// ReceivePackageCommandHandler handles the Delivered -> Received transition.
//
// The card holder must own the package and the package must be Delivered into
// the locker it records; any other case is parcel.ErrLockerNotBound. The locker
// slot is released in the same transaction.
type ReceivePackageCommandHandler struct {
	uowFactory LifecycleUoWFactory
	gatekeeper services.LockerGatekeeper
	notifier   ports.Notifier
}

func NewReceivePackageCommandHandler(
	uowFactory LifecycleUoWFactory,
	gatekeeper services.LockerGatekeeper,
	notifier ports.Notifier,
) ReceivePackageCommandHandler {
	return ReceivePackageCommandHandler{
		uowFactory: uowFactory,
		gatekeeper: gatekeeper,
		notifier:   notifier,
	}
}

func (h ReceivePackageCommandHandler) Handle(ctx context.Context, cmd ReceivePackageCommand) error {
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

	holder, err := cards.Resolve(ctx, uow.Users(), cmd.Serial())
	if err != nil {
		return err
	}

	p, err := loadParcel(ctx, uow.Parcels(), cmd.PackageID())
	if err != nil {
		return err
	}

	inLocker, err := uow.Parcels().List(ctx, query.New(
		query.Eq(ports.ColumnParcelPostBox, p.PostBoxID()),
		query.Eq(ports.ColumnParcelStatus, int64(parcel.Delivered)),
	).AsReadOnly())
	if err != nil {
		return err
	}

	if err = h.gatekeeper.AuthorizePickup(inLocker, p.PostBoxID(), p.ID(), holder); err != nil {
		if errs.IsKind(err, errs.KindNotFound) {
			return parcel.ErrLockerNotBound.WithCause(err)
		}
		return err
	}

	if err = requireStatus(ctx, uow.StatusLabels(), parcel.Received); err != nil {
		return err
	}

	if err = p.Receive(); err != nil {
		return err
	}

	if err = uow.Parcels().Update(ctx, p); err != nil {
		return err
	}

	if err = uow.Lockers().Release(ctx, p.PostBoxID(), p.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Notify(ctx, ports.Notification{
		Email:   holder.Email(),
		Subject: receivedSubject,
		Message: receivedMessage,
	})

	return nil
}
