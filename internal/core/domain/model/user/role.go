package user

import (
	"errors"
	"strings"

	"postbox/internal/core/domain/model/kernel"
	"postbox/internal/pkg/errs"
)

// RoleName is the display name of a role row. Role checks compare names.
type RoleName string

const (
	RoleClient  RoleName = "Client"
	RoleCourier RoleName = "Courier"
)

var ErrRoleIsNotConstructed = errors.New("Role must be created via RestoreRole")

// Role is a reference row. Roles are seeded by migrations and never created by
// request handling.
type Role struct {
	kernel.Entity

	name          RoleName
	isConstructed bool
}

// RestoreRole rebuilds a stored role.
func RestoreRole(entity kernel.Entity, name string) (*Role, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("role name")
	}

	return &Role{Entity: entity, name: RoleName(name), isConstructed: true}, nil
}

func (r *Role) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRoleIsNotConstructed
	}
	return nil
}

func (r *Role) Name() RoleName {
	return r.name
}
