package queries

import (
	"errors"

	"postbox/internal/pkg/guard"
)

var ErrGetCourierQueueQueryIsNotConstructed = errors.New(
	"GetCourierQueueQuery must be created via NewGetCourierQueueQuery constructor",
)

// GetCourierQueueQuery lists the Pending packages a courier can pick up.
type GetCourierQueueQuery struct {
	serial string

	guard guard.ConstructorGuard
}

func NewGetCourierQueueQuery(serial string) GetCourierQueueQuery {
	return GetCourierQueueQuery{serial: serial, guard: guard.NewConstructorGuard()}
}

func (q GetCourierQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierQueueQueryIsNotConstructed)
}

func (q GetCourierQueueQuery) Serial() string { return q.serial }
