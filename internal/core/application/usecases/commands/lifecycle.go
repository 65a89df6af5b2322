package commands

import (
	"context"

	"postbox/internal/core/domain/model/parcel"
	"postbox/internal/core/domain/model/user"
	"postbox/internal/core/ports"
	"postbox/internal/pkg/errs"
	"postbox/internal/pkg/query"
)

// Email texts sent after successful transitions.
const (
	placedSubject   = "Package Ready for Pickup"
	placedMessage   = "Your package has been placed in locker %d. You can pick it up using your NFC card."
	receivedSubject = "Package Received"
	receivedMessage = "Your package has been successfully received. Thank you for using our service!"
)

// loadParcel locks the package row for the rest of the transaction.
func loadParcel(ctx context.Context, parcels ports.ParcelRepository, id int64) (*parcel.Parcel, error) {
	return parcels.Single(ctx, query.New(query.Eq(ports.ColumnID, id)))
}

// requireStatus fails with parcel.ErrStatusNotFound when the label row for s is missing.
func requireStatus(ctx context.Context, labels ports.StatusLabelRepository, s parcel.Status) error {
	_, err := labels.Single(ctx, query.New(query.Eq(ports.ColumnID, int64(s))).AsReadOnly())
	if errs.IsKind(err, errs.KindNotFound) {
		return parcel.ErrStatusNotFound.WithCause(err)
	}
	return err
}

func loadOwner(ctx context.Context, users ports.UserRepository, p *parcel.Parcel) (*user.User, error) {
	owner, err := users.Single(ctx, query.New(query.Eq(ports.ColumnID, p.OwnerID())).AsReadOnly())
	if errs.IsKind(err, errs.KindNotFound) {
		return nil, user.ErrNotFound.WithCause(err)
	}
	return owner, err
}
