package queries

import (
	"errors"

	"postbox/internal/core/domain/model/parcel"
	"postbox/internal/pkg/errs"
	"postbox/internal/pkg/guard"
)

var ErrCheckBindingQueryIsNotConstructed = errors.New(
	"CheckBindingQuery must be created via NewCheckBindingQuery constructor",
)

// CheckBindingQuery asks whether a card may open a locker to take a package.
type CheckBindingQuery struct {
	postBoxID int64
	serial    string
	packageID int64

	guard guard.ConstructorGuard
}

func NewCheckBindingQuery(postBoxID int64, serial string, packageID int64) (CheckBindingQuery, error) {
	var postBoxErr, packageErr error
	if postBoxID <= 0 {
		postBoxErr = parcel.ErrInvalidPostBox
	}
	if packageID <= 0 {
		packageErr = errs.NewValueIsRequiredError("packageId")
	}
	if err := errors.Join(postBoxErr, packageErr); err != nil {
		return CheckBindingQuery{}, err
	}

	return CheckBindingQuery{
		postBoxID: postBoxID,
		serial:    serial,
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q CheckBindingQuery) Validate() error {
	return q.guard.Validate(ErrCheckBindingQueryIsNotConstructed)
}

func (q CheckBindingQuery) PostBoxID() int64 { return q.postBoxID }
func (q CheckBindingQuery) Serial() string   { return q.serial }
func (q CheckBindingQuery) PackageID() int64 { return q.packageID }
