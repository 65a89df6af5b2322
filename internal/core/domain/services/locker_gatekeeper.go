package services

import (
	"postbox/internal/core/domain/model/parcel"
	"postbox/internal/core/domain/model/user"
)

// Pickup is a locker the holder may open and the package waiting in it.
type Pickup struct {
	LockerID  int64
	PackageID int64
}

// LockerGatekeeper is a domain service authorizing NFC card holders against
// lockers and packages.
//
// Business rules:
//   - Only the owner of a Delivered package may open the locker holding it
//   - Only holders with the Courier role may see the courier queue or open a
//     locker for placement
//   - A client's pickups are their Delivered packages that have a locker
//
// Example usage:
//
//	gatekeeper := services.NewLockerGatekeeper()
//	bound, err := gatekeeper.CheckBinding(parcelsInLocker, 3, 42, holder)
//	if err != nil {
//	    // no Delivered package 42 in locker 3
//	}
type LockerGatekeeper struct{}

// NewLockerGatekeeper creates a new LockerGatekeeper instance.
func NewLockerGatekeeper() LockerGatekeeper {
	return LockerGatekeeper{}
}

// CheckBinding reports whether holder owns the Delivered package packageID
// among the packages found in locker postBoxID.
//
// Parameters:
//   - inLocker: packages currently recorded with post box postBoxID
//   - postBoxID: the locker being opened
//   - packageID: the package the holder wants
//   - holder: the validated card holder
//
// Returns:
//   - (true, nil) if the holder owns the package
//   - (false, nil) if someone else owns it
//   - parcel.ErrNotFound if no Delivered package packageID is in the locker
func (LockerGatekeeper) CheckBinding(
	inLocker []*parcel.Parcel,
	postBoxID, packageID int64,
	holder *user.User,
) (bool, error) {
	if err := holder.Validate(); err != nil {
		return false, err
	}

	for _, p := range inLocker {
		if p.ID() == packageID && p.AwaitsPickupIn(postBoxID) {
			return p.IsOwnedBy(holder.ID()), nil
		}
	}

	return false, parcel.ErrNotFound
}

// AuthorizePickup is CheckBinding turned into an error: parcel.ErrLockerNotBound
// when the holder does not own the package.
func (g LockerGatekeeper) AuthorizePickup(
	inLocker []*parcel.Parcel,
	postBoxID, packageID int64,
	holder *user.User,
) error {
	bound, err := g.CheckBinding(inLocker, postBoxID, packageID, holder)
	if err != nil {
		return err
	}
	if !bound {
		return parcel.ErrLockerNotBound
	}
	return nil
}

// AuthorizeCourier returns parcel.ErrNotCourier unless holder has the Courier role.
// The holder must have been loaded together with its roles.
func (LockerGatekeeper) AuthorizeCourier(holder *user.User) error {
	if err := holder.Validate(); err != nil {
		return err
	}
	if !holder.HasRole(user.RoleCourier) {
		return parcel.ErrNotCourier
	}
	return nil
}

// Pickups selects the lockers holder may open, in the order given.
//
// Returns parcel.ErrNoDeliveredPackages when there are none; an empty result is
// never a success.
func (LockerGatekeeper) Pickups(holder *user.User, owned []*parcel.Parcel) ([]Pickup, error) {
	if err := holder.Validate(); err != nil {
		return nil, err
	}

	pickups := make([]Pickup, 0, len(owned))
	for _, p := range owned {
		if !p.IsOwnedBy(holder.ID()) || p.Status() != parcel.Delivered || p.PostBoxID() <= 0 {
			continue
		}
		pickups = append(pickups, Pickup{LockerID: p.PostBoxID(), PackageID: p.ID()})
	}

	if len(pickups) == 0 {
		return nil, parcel.ErrNoDeliveredPackages
	}
	return pickups, nil
}
