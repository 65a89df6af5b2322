package queries

import (
	"errors"

	"postbox/internal/pkg/guard"
)

var ErrValidateCardQueryIsNotConstructed = errors.New(
	"ValidateCardQuery must be created via NewValidateCardQuery constructor",
)

// ValidateCardQuery checks a presented card and identifies its holder.
type ValidateCardQuery struct {
	serial string

	guard guard.ConstructorGuard
}

func NewValidateCardQuery(serial string) ValidateCardQuery {
	return ValidateCardQuery{serial: serial, guard: guard.NewConstructorGuard()}
}

func (q ValidateCardQuery) Validate() error {
	return q.guard.Validate(ErrValidateCardQueryIsNotConstructed)
}

func (q ValidateCardQuery) Serial() string { return q.serial }

// ValidateCardQueryResponse describes the card holder.
type ValidateCardQueryResponse struct {
	UserID int64
	Email  string
	Serial string
	Roles  []string
}
