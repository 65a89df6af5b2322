package queries

import (
	"errors"
	"time"

	"postbox/internal/pkg/errs"
	"postbox/internal/pkg/guard"
)

var ErrGetClientPackagesQueryIsNotConstructed = errors.New(
	"GetClientPackagesQuery must be created via NewGetClientPackagesQuery constructor",
)

// GetClientPackagesQuery lists every package addressed to a user.
//
// Example:
//
//	q, err := NewGetClientPackagesQuery(42)
//	if err != nil {
//	    return err
//	}
//	packages, err := handler.Handle(ctx, q)
//	for _, p := range packages {
//	    fmt.Printf("%d %s in locker %d\n", p.ID, p.DeliveryStatusName, p.PostBoxID)
//	}
type GetClientPackagesQuery struct {
	userID int64

	guard guard.ConstructorGuard
}

func NewGetClientPackagesQuery(userID int64) (GetClientPackagesQuery, error) {
	if userID <= 0 {
		return GetClientPackagesQuery{}, errs.NewValueIsRequiredError("userId")
	}
	return GetClientPackagesQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetClientPackagesQuery) Validate() error {
	return q.guard.Validate(ErrGetClientPackagesQueryIsNotConstructed)
}

func (q GetClientPackagesQuery) UserID() int64 { return q.userID }

// ClientPackageResponse is a package joined with its category and status labels.
type ClientPackageResponse struct {
	PackageResponse
	CategoryName       string
	IsFragile          bool
	DeliveryStatusName string
	CreatedOn          time.Time
}

func (r ClientPackageResponse) Volume() int {
	return r.Height * r.Width * r.Depth
}
