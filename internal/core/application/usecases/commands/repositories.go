// Package commands contains business operations that modify system state.
// Every handler validates its command, opens a unit of work, applies domain
// rules to the loaded aggregates and commits. Notifications and locker signals
// are sent after commit and never fail the command.
package commands

import (
	"context"

	"postbox/internal/core/ports"
)

// Unit of Work interfaces give each handler only the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		Users() ports.UserRepository
	}

	RoleRepoFactory interface {
		Roles() ports.RoleRepository
	}

	AssignmentRepoFactory interface {
		Assignments() ports.AssignmentRepository
	}

	ParcelRepoFactory interface {
		Parcels() ports.ParcelRepository
	}

	StatusLabelRepoFactory interface {
		StatusLabels() ports.StatusLabelRepository
	}

	CategoryRepoFactory interface {
		Categories() ports.CategoryRepository
	}

	LockerRepoFactory interface {
		Lockers() ports.LockerRepository
	}

	// UserUoW covers card binding.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	// RegistrationUoW creates a user together with its role link.
	RegistrationUoW interface {
		TxManager
		UserRepoFactory
		RoleRepoFactory
		AssignmentRepoFactory
	}

	RegistrationUoWFactory interface {
		Create() RegistrationUoW
	}

	// LifecycleUoW moves packages through their statuses and lockers.
	LifecycleUoW interface {
		TxManager
		UserRepoFactory
		ParcelRepoFactory
		StatusLabelRepoFactory
		LockerRepoFactory
	}

	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// CatalogUoW creates and removes packages.
	CatalogUoW interface {
		TxManager
		UserRepoFactory
		ParcelRepoFactory
		CategoryRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// CardReaders reads card holders and their packages outside a transaction.
	CardReaders interface {
		UserRepoFactory
		ParcelRepoFactory
	}
)
