// Package cards looks up NFC card holders for commands and queries.
package cards

import (
	"context"
	"strings"

	"postbox/internal/core/domain/model/user"
	"postbox/internal/core/ports"
	"postbox/internal/pkg/errs"
	"postbox/internal/pkg/query"
)

// Resolve returns the holder of serial with roles loaded.
//
// Returns:
//   - user.ErrSerialRequired if serial is blank
//   - user.ErrCardNotFound if no user holds serial
func Resolve(ctx context.Context, users ports.UserRepository, serial string) (*user.User, error) {
	if strings.TrimSpace(serial) == "" {
		return nil, user.ErrSerialRequired
	}
	return find(ctx, users, serial)
}

// Validate is Resolve for card readers: a blank serial is an unknown card.
func Validate(ctx context.Context, users ports.UserRepository, serial string) (*user.User, error) {
	if strings.TrimSpace(serial) == "" {
		return nil, user.ErrCardNotFound
	}
	return find(ctx, users, serial)
}

func find(ctx context.Context, users ports.UserRepository, serial string) (*user.User, error) {
	holder, err := users.Single(ctx, BySerial(serial))
	if errs.IsKind(err, errs.KindNotFound) {
		return nil, user.ErrCardNotFound.WithCause(err)
	}
	if err != nil {
		return nil, err
	}
	return holder, nil
}

// BySerial selects the holder of serial together with its roles.
func BySerial(serial string) query.Spec {
	return query.New(query.Eq(ports.ColumnUserNfcSerial, serial)).
		Include(ports.RelationUserRoles).
		AsReadOnly()
}
