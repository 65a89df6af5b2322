package queries

import (
	"context"

	"postbox/internal/core/application/usecases/cards"
)

type ValidateCardQueryHandler struct {
	readers UserReader
}

func NewValidateCardQueryHandler(readers UserReader) ValidateCardQueryHandler {
	return ValidateCardQueryHandler{readers: readers}
}

// Handle fails with user.ErrCardNotFound for a blank or unknown serial.
func (h ValidateCardQueryHandler) Handle(ctx context.Context, q ValidateCardQuery) (ValidateCardQueryResponse, error) {
	if err := q.Validate(); err != nil {
		return ValidateCardQueryResponse{}, err
	}

	holder, err := cards.Validate(ctx, h.readers.Users(), q.Serial())
	if err != nil {
		return ValidateCardQueryResponse{}, err
	}

	roles := make([]string, 0, len(holder.Roles()))
	for _, r := range holder.Roles() {
		roles = append(roles, string(r.Name()))
	}

	return ValidateCardQueryResponse{
		UserID: holder.ID(),
		Email:  holder.Email(),
		Serial: q.Serial(),
		Roles:  roles,
	}, nil
}
