package queries

import (
	"errors"

	"postbox/internal/pkg/guard"
)

var ErrListUsersWithNfcQueryIsNotConstructed = errors.New(
	"ListUsersWithNfcQuery must be created via NewListUsersWithNfcQuery constructor",
)

// ListUsersWithNfcQuery lists every user holding a card.
type ListUsersWithNfcQuery struct {
	guard guard.ConstructorGuard
}

func NewListUsersWithNfcQuery() ListUsersWithNfcQuery {
	return ListUsersWithNfcQuery{guard: guard.NewConstructorGuard()}
}

func (q ListUsersWithNfcQuery) Validate() error {
	return q.guard.Validate(ErrListUsersWithNfcQueryIsNotConstructed)
}

// UserCardResponse pairs a user with its card serial.
type UserCardResponse struct {
	UserID int64
	Email  string
	Serial string
}
