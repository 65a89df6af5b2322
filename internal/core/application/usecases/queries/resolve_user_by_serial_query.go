package queries

import (
	"errors"

	"postbox/internal/pkg/guard"
)

var ErrResolveUserBySerialQueryIsNotConstructed = errors.New(
	"ResolveUserBySerialQuery must be created via NewResolveUserBySerialQuery constructor",
)

// ResolveUserBySerialQuery finds the id of the user holding a card.
type ResolveUserBySerialQuery struct {
	serial string

	guard guard.ConstructorGuard
}

func NewResolveUserBySerialQuery(serial string) ResolveUserBySerialQuery {
	return ResolveUserBySerialQuery{serial: serial, guard: guard.NewConstructorGuard()}
}

func (q ResolveUserBySerialQuery) Validate() error {
	return q.guard.Validate(ErrResolveUserBySerialQueryIsNotConstructed)
}

func (q ResolveUserBySerialQuery) Serial() string { return q.serial }
