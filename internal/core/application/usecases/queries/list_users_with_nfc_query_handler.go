package queries

import (
	"context"

	"postbox/internal/core/ports"
	"postbox/internal/pkg/query"
)

type ListUsersWithNfcQueryHandler struct {
	readers UserReader
}

func NewListUsersWithNfcQueryHandler(readers UserReader) ListUsersWithNfcQueryHandler {
	return ListUsersWithNfcQueryHandler{readers: readers}
}

// Handle returns users ordered by id. Users with an empty serial are skipped.
func (h ListUsersWithNfcQueryHandler) Handle(ctx context.Context, q ListUsersWithNfcQuery) ([]UserCardResponse, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	users, err := h.readers.Users().List(ctx, query.New(
		query.NotNull(ports.ColumnUserNfcSerial),
		query.Ne(ports.ColumnUserNfcSerial, ""),
	).OrderBy(ports.ColumnID, query.Asc).AsReadOnly())
	if err != nil {
		return nil, err
	}

	response := make([]UserCardResponse, 0, len(users))
	for _, u := range users {
		serial, ok := u.NfcSerial()
		if !ok {
			continue
		}
		response = append(response, UserCardResponse{UserID: u.ID(), Email: u.Email(), Serial: serial})
	}
	return response, nil
}
