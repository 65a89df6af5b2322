package queries

import (
	"errors"

	"postbox/internal/pkg/errs"
	"postbox/internal/pkg/guard"
)

var ErrGetUserSerialQueryIsNotConstructed = errors.New(
	"GetUserSerialQuery must be created via NewGetUserSerialQuery constructor",
)

// GetUserSerialQuery reads the card bound to a user, if any.
type GetUserSerialQuery struct {
	userID int64

	guard guard.ConstructorGuard
}

func NewGetUserSerialQuery(userID int64) (GetUserSerialQuery, error) {
	if userID <= 0 {
		return GetUserSerialQuery{}, errs.NewValueIsRequiredError("userId")
	}
	return GetUserSerialQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserSerialQuery) Validate() error {
	return q.guard.Validate(ErrGetUserSerialQueryIsNotConstructed)
}

func (q GetUserSerialQuery) UserID() int64 { return q.userID }

// GetUserSerialQueryResponse holds the serial; Serial is nil when no card is bound.
type GetUserSerialQueryResponse struct {
	UserID int64
	Serial *string
}
