package userrepo

import (
	"postbox/internal/adapters/out/postgres/store"
	"postbox/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository.
type GormUserRepository struct {
	*store.Repository[*user.User, UserDTO, *UserDTO]
}

// NewGormUserRepository creates a user repository on db.
func NewGormUserRepository(db *gorm.DB, opts ...store.Option) *GormUserRepository {
	s := store.New[UserDTO](db, store.Entity{Code: "user", Name: "User"}, opts...)
	return &GormUserRepository{store.NewRepository(s, store.Mapper[*user.User, UserDTO]{
		ToDomain:   userToDomain,
		FromDomain: userFromDomain,
	})}
}

// GormRoleRepository implements ports.RoleRepository.
type GormRoleRepository struct {
	*store.Repository[*user.Role, RoleDTO, *RoleDTO]
}

// NewGormRoleRepository creates a role repository on db.
func NewGormRoleRepository(db *gorm.DB, opts ...store.Option) *GormRoleRepository {
	s := store.New[RoleDTO](db, store.Entity{Code: "role", Name: "Role"}, opts...)
	return &GormRoleRepository{store.NewRepository(s, store.Mapper[*user.Role, RoleDTO]{
		ToDomain:   roleToDomain,
		FromDomain: roleFromDomain,
	})}
}

// GormAssignmentRepository implements ports.AssignmentRepository.
type GormAssignmentRepository struct {
	*store.Repository[*user.Assignment, AssignmentDTO, *AssignmentDTO]
}

// NewGormAssignmentRepository creates a user-role repository on db.
func NewGormAssignmentRepository(db *gorm.DB, opts ...store.Option) *GormAssignmentRepository {
	s := store.New[AssignmentDTO](db, store.Entity{Code: "user_role", Name: "User role"}, opts...)
	return &GormAssignmentRepository{store.NewRepository(s, store.Mapper[*user.Assignment, AssignmentDTO]{
		ToDomain:   assignmentToDomain,
		FromDomain: assignmentFromDomain,
	})}
}
