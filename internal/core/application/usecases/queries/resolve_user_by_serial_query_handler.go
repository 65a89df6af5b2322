package queries

import (
	"context"

	"postbox/internal/core/application/usecases/cards"
)

type ResolveUserBySerialQueryHandler struct {
	readers UserReader
}

func NewResolveUserBySerialQueryHandler(readers UserReader) ResolveUserBySerialQueryHandler {
	return ResolveUserBySerialQueryHandler{readers: readers}
}

// Handle fails with user.ErrSerialRequired for a blank serial and
// user.ErrCardNotFound for an unbound one.
func (h ResolveUserBySerialQueryHandler) Handle(ctx context.Context, q ResolveUserBySerialQuery) (int64, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}

	holder, err := cards.Resolve(ctx, h.readers.Users(), q.Serial())
	if err != nil {
		return 0, err
	}
	return holder.ID(), nil
}
