// Package userrepo provides models and mapping functions for users, roles and
// role assignments.
package userrepo

import (
	"postbox/internal/adapters/out/postgres/store"
	"postbox/internal/core/domain/model/user"
)

// UserDTO maps the users table. NfcSerial is unique when not null (partial index).
type UserDTO struct {
	store.Audit
	Email     string
	NfcSerial *string
	Roles     []AssignmentDTO `gorm:"foreignKey:UserID"`
}

func (UserDTO) TableName() string {
	return "users"
}

// RoleDTO maps the roles table.
type RoleDTO struct {
	store.Audit
	Name string
}

func (RoleDTO) TableName() string {
	return "roles"
}

// AssignmentDTO maps the user_roles join table.
type AssignmentDTO struct {
	store.Audit
	UserID int64
	RoleID int64
	Role   *RoleDTO `gorm:"foreignKey:RoleID"`
}

func (AssignmentDTO) TableName() string {
	return "user_roles"
}

func userFromDomain(u *user.User) UserDTO {
	dto := UserDTO{Audit: store.AuditOf(u), Email: u.Email()}
	if serial, ok := u.NfcSerial(); ok {
		dto.NfcSerial = &serial
	}
	return dto
}

// userToDomain keeps only assignments whose role was loaded, so a user fetched
// without its roles simply has none.
func userToDomain(dto *UserDTO) (*user.User, error) {
	entity, err := store.RestoreEntity(dto.Audit)
	if err != nil {
		return nil, err
	}

	roles := make([]*user.Role, 0, len(dto.Roles))
	for i := range dto.Roles {
		if dto.Roles[i].Role == nil {
			continue
		}
		role, roleErr := roleToDomain(dto.Roles[i].Role)
		if roleErr != nil {
			return nil, roleErr
		}
		roles = append(roles, role)
	}

	return user.RestoreUser(entity, dto.Email, dto.NfcSerial, roles)
}

func roleFromDomain(r *user.Role) RoleDTO {
	return RoleDTO{Audit: store.AuditOf(r), Name: string(r.Name())}
}

func roleToDomain(dto *RoleDTO) (*user.Role, error) {
	entity, err := store.RestoreEntity(dto.Audit)
	if err != nil {
		return nil, err
	}
	return user.RestoreRole(entity, dto.Name)
}

func assignmentFromDomain(a *user.Assignment) AssignmentDTO {
	return AssignmentDTO{Audit: store.AuditOf(a), UserID: a.UserID(), RoleID: a.RoleID()}
}

func assignmentToDomain(dto *AssignmentDTO) (*user.Assignment, error) {
	entity, err := store.RestoreEntity(dto.Audit)
	if err != nil {
		return nil, err
	}
	return user.RestoreAssignment(entity, dto.UserID, dto.RoleID)
}
