package queries

import (
	"context"

	"postbox/internal/core/domain/model/user"
	"postbox/internal/core/ports"
	"postbox/internal/pkg/errs"
	"postbox/internal/pkg/query"
)

type GetUserSerialQueryHandler struct {
	readers UserReader
}

func NewGetUserSerialQueryHandler(readers UserReader) GetUserSerialQueryHandler {
	return GetUserSerialQueryHandler{readers: readers}
}

// Handle fails with user.ErrNotFound for an unknown user.
func (h GetUserSerialQueryHandler) Handle(ctx context.Context, q GetUserSerialQuery) (GetUserSerialQueryResponse, error) {
	if err := q.Validate(); err != nil {
		return GetUserSerialQueryResponse{}, err
	}

	u, err := h.readers.Users().Single(ctx, query.New(query.Eq(ports.ColumnID, q.UserID())).AsReadOnly())
	if errs.IsKind(err, errs.KindNotFound) {
		return GetUserSerialQueryResponse{}, user.ErrNotFound.WithCause(err)
	}
	if err != nil {
		return GetUserSerialQueryResponse{}, err
	}

	response := GetUserSerialQueryResponse{UserID: u.ID()}
	if serial, ok := u.NfcSerial(); ok {
		response.Serial = &serial
	}
	return response, nil
}
