// Package locker models the occupancy of physical locker slots.
//
// A Locker is occupied while exactly one Delivered package sits in it. Occupancy
// is claimed when a courier places a package and released when the owner
// receives it. Storage applies both changes as conditional writes, so two
// couriers can never both believe they placed a package in the same slot.
package locker

import (
	"errors"

	"postbox/internal/core/domain/model/kernel"
	"postbox/internal/pkg/errs"
)

var (
	ErrInvalidID = errs.Validation("package.INVALID_POSTBOX", "Post box id must be positive")
	ErrOccupied  = errs.Conflict("package.LOCKER_OCCUPIED", "Locker is already occupied by another package")

	ErrLockerIsNotConstructed = errors.New("Locker must be created via NewLocker constructor")
)

// Locker is a slot identified by its post box id.
type Locker struct {
	kernel.Entity

	postBoxID  int64
	occupiedBy *int64

	isConstructed bool
}

// NewLocker returns an empty slot.
func NewLocker(postBoxID int64) (*Locker, error) {
	if postBoxID <= 0 {
		return nil, ErrInvalidID
	}
	return &Locker{postBoxID: postBoxID, isConstructed: true}, nil
}

// RestoreLocker rebuilds a stored slot. A nil occupiedBy means the slot is free.
func RestoreLocker(entity kernel.Entity, occupiedBy *int64) (*Locker, error) {
	l, err := NewLocker(entity.ID())
	if err != nil {
		return nil, err
	}
	l.Entity = entity
	if occupiedBy != nil {
		id := *occupiedBy
		l.occupiedBy = &id
	}
	return l, nil
}

func (l *Locker) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLockerIsNotConstructed
	}
	return nil
}

// PostBoxID is the slot number printed on the locker.
func (l *Locker) PostBoxID() int64 {
	return l.postBoxID
}

// OccupiedBy returns the package in the slot and whether there is one.
func (l *Locker) OccupiedBy() (int64, bool) {
	if l.occupiedBy == nil {
		return 0, false
	}
	return *l.occupiedBy, true
}

// Occupy puts packageID in the slot. Re-occupying with the same package is allowed.
func (l *Locker) Occupy(packageID int64) error {
	if packageID <= 0 {
		return errs.NewValueIsRequiredError("packageId")
	}
	if current, ok := l.OccupiedBy(); ok && current != packageID {
		return ErrOccupied
	}
	l.occupiedBy = &packageID
	return nil
}

// Release frees the slot if packageID occupies it and reports whether it did.
func (l *Locker) Release(packageID int64) bool {
	if current, ok := l.OccupiedBy(); !ok || current != packageID {
		return false
	}
	l.occupiedBy = nil
	return true
}
