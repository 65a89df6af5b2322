package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// Repositories gives access to every repository. Outside a transaction each
// call runs on its own connection.
type Repositories interface {
	Users() UserRepository
	Roles() RoleRepository
	Assignments() AssignmentRepository
	Parcels() ParcelRepository
	StatusLabels() StatusLabelRepository
	Categories() CategoryRepository
	Lockers() LockerRepository
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// Repositories returned after Begin use the transaction.
	Repositories
}
