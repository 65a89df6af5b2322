package user

import (
	"errors"

	"postbox/internal/core/domain/model/kernel"
	"postbox/internal/pkg/errs"
)

var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment")

// Assignment grants a role to a user. The (user, role) pair is unique in storage.
type Assignment struct {
	kernel.Entity

	userID        int64
	roleID        int64
	isConstructed bool
}

// NewAssignment links a stored user to a stored role.
func NewAssignment(userID, roleID int64) (*Assignment, error) {
	a := &Assignment{userID: userID, roleID: roleID, isConstructed: true}
	if err := errors.Join(requireID("userId", userID), requireID("roleId", roleID)); err != nil {
		return nil, err
	}
	return a, nil
}

// RestoreAssignment rebuilds a stored assignment.
func RestoreAssignment(entity kernel.Entity, userID, roleID int64) (*Assignment, error) {
	a, err := NewAssignment(userID, roleID)
	if err != nil {
		return nil, err
	}
	a.Entity = entity
	return a, nil
}

func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

func (a *Assignment) UserID() int64 { return a.userID }
func (a *Assignment) RoleID() int64 { return a.roleID }

func requireID(name string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
