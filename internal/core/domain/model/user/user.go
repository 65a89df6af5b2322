package user

import (
	"errors"
	"strings"

	"postbox/internal/core/domain/model/kernel"
)

var (
	// ErrUserIsNotConstructed is returned when a User was not created through
	// NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User is the aggregate root for accounts. Couriers and clients are both users;
// they differ only by assigned roles.
//
// User follows these invariants:
//   - Email is non-blank and contains "@"
//   - NFC serial, when present, is non-blank
//   - Can only be created through NewUser or RestoreUser
type User struct {
	kernel.Entity

	email string

	// nfcSerial is nil when no card is bound
	nfcSerial *string

	// roles are populated only when the user was loaded together with its assignments
	roles []*Role

	isConstructed bool
}

// NewUser creates a transient user without a card or roles.
//
// Returns:
//   - *User on success
//   - ErrInvalidEmail if email is blank or has no "@"
//
// Example:
//
//	u, err := user.NewUser("courier@example.com")
//	if err != nil {
//	    return err
//	}
//	id, err := repo.Add(ctx, u)
func NewUser(email string) (*User, error) {
	u := &User{isConstructed: true}
	if err := u.setEmail(email); err != nil {
		return nil, err
	}
	return u, nil
}

// RestoreUser rebuilds a stored user. A nil or blank serial means no card is bound.
func RestoreUser(entity kernel.Entity, email string, nfcSerial *string, roles []*Role) (*User, error) {
	u := &User{Entity: entity, isConstructed: true}

	if err := u.setEmail(email); err != nil {
		return nil, err
	}

	if nfcSerial != nil && strings.TrimSpace(*nfcSerial) != "" {
		s := *nfcSerial
		u.nfcSerial = &s
	}

	for _, r := range roles {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}
	u.roles = append([]*Role(nil), roles...)

	return u, nil
}

// Validate ensures the User instance was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// Email returns the unique login address.
func (u *User) Email() string {
	return u.email
}

// NfcSerial returns the bound serial and whether one is bound.
func (u *User) NfcSerial() (string, bool) {
	if u.nfcSerial == nil {
		return "", false
	}
	return *u.nfcSerial, true
}

// Roles returns the roles loaded with the user.
func (u *User) Roles() []*Role {
	return append([]*Role(nil), u.roles...)
}

// HasRole reports whether one of the loaded roles has the given name.
func (u *User) HasRole(name RoleName) bool {
	for _, r := range u.roles {
		if r.Name() == name {
			return true
		}
	}
	return false
}

// BindNfc binds serial to the user, replacing any previous card.
//
// Returns:
//   - (false, nil) if the user already holds exactly this serial
//   - (true, nil) if the binding changed and must be persisted
//   - ErrSerialRequired if serial is blank
func (u *User) BindNfc(serial string) (bool, error) {
	if strings.TrimSpace(serial) == "" {
		return false, ErrSerialRequired
	}

	if current, ok := u.NfcSerial(); ok && current == serial {
		return false, nil
	}

	u.nfcSerial = &serial
	return true, nil
}

func (u *User) setEmail(email string) error {
	if !IsValidEmail(email) {
		return ErrInvalidEmail
	}
	u.email = email
	return nil
}

// IsValidEmail accepts any non-blank string containing "@".
func IsValidEmail(email string) bool {
	return strings.TrimSpace(email) != "" && strings.Contains(email, "@")
}
