package parcel

import (
	"errors"

	"postbox/internal/core/domain/model/kernel"
	"postbox/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel was not created through
	// NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
)

// Parcel is the aggregate root for a physical package moving towards its owner.
//
// Parcel follows these invariants:
//   - Owner and category are always set
//   - Dimensions are positive
//   - postBoxID is 0 until the parcel is placed, positive afterwards
//   - Status only advances Pending -> InProgress -> Delivered -> Received
type Parcel struct {
	kernel.Entity

	ownerID    int64
	categoryID int64
	dimensions Dimensions

	// postBoxID is the locker slot, 0 when not placed
	postBoxID int64

	status Status

	isConstructed bool
}

// NewParcel creates a Pending parcel that is not in any locker.
//
// Example:
//
//	dims, _ := parcel.NewDimensions(20, 30, 10)
//	p, err := parcel.NewParcel(ownerID, categoryID, dims)
func NewParcel(ownerID, categoryID int64, dimensions Dimensions) (*Parcel, error) {
	p := &Parcel{status: Pending, isConstructed: true}

	if err := errors.Join(
		p.setOwner(ownerID),
		p.setCategory(categoryID),
		p.setDimensions(dimensions),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel rebuilds a stored parcel in any status.
func RestoreParcel(
	entity kernel.Entity,
	ownerID, categoryID int64,
	dimensions Dimensions,
	postBoxID int64,
	status Status,
) (*Parcel, error) {
	p, err := NewParcel(ownerID, categoryID, dimensions)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if postBoxID < 0 {
		return nil, ErrInvalidPostBox
	}

	p.Entity = entity
	p.postBoxID = postBoxID
	p.status = status
	return p, nil
}

// Validate ensures the Parcel instance was created through a constructor.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

func (p *Parcel) OwnerID() int64         { return p.ownerID }
func (p *Parcel) CategoryID() int64      { return p.categoryID }
func (p *Parcel) Dimensions() Dimensions { return p.dimensions }
func (p *Parcel) PostBoxID() int64       { return p.postBoxID }
func (p *Parcel) Status() Status         { return p.status }

// IsOwnedBy reports whether userID is the client the parcel is addressed to.
func (p *Parcel) IsOwnedBy(userID int64) bool {
	return p.ownerID == userID
}

// AwaitsPickupIn reports whether the parcel is Delivered into postBoxID.
func (p *Parcel) AwaitsPickupIn(postBoxID int64) bool {
	return p.status == Delivered && p.postBoxID == postBoxID
}

// StartDelivery marks the parcel as picked up by a courier.
func (p *Parcel) StartDelivery() error {
	next, err := p.status.StartDelivery()
	if err != nil {
		return err
	}
	p.status = next
	return nil
}

// PlaceInLocker records the locker slot and marks the parcel Delivered.
//
// Returns:
//   - ErrInvalidPostBox if postBoxID is not positive
//   - ErrInvalidStatusTransition unless the parcel is InProgress
func (p *Parcel) PlaceInLocker(postBoxID int64) error {
	if postBoxID <= 0 {
		return ErrInvalidPostBox
	}

	next, err := p.status.Deliver()
	if err != nil {
		return err
	}

	p.postBoxID = postBoxID
	p.status = next
	return nil
}

// Receive marks the parcel as collected. The post box id is kept for history.
func (p *Parcel) Receive() error {
	next, err := p.status.Receive()
	if err != nil {
		return err
	}
	p.status = next
	return nil
}

func (p *Parcel) setOwner(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("userId")
	}
	p.ownerID = id
	return nil
}

func (p *Parcel) setCategory(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("categoryId")
	}
	p.categoryID = id
	return nil
}

func (p *Parcel) setDimensions(d Dimensions) error {
	if err := d.Validate(); err != nil {
		return err
	}
	p.dimensions = d
	return nil
}
