// Package ports defines the contracts between the application core and its adapters.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"postbox/internal/core/domain/model/locker"
	"postbox/internal/core/domain/model/parcel"
	"postbox/internal/core/domain/model/user"
	"postbox/internal/pkg/query"
)

// Finder reads aggregates matching a query.Spec.
type Finder[T any] interface {
	// List returns every match in the order spec requests; no match is an empty slice.
	List(ctx context.Context, spec query.Spec) ([]T, error)

	// Single returns the first match. Zero matches fail with a NotFound error
	// coded "<entity>.NOT_FOUND"; extra matches are ignored.
	Single(ctx context.Context, spec query.Spec) (T, error)
}

// Writer persists aggregates. Timestamps are stamped by the implementation and
// written back to the aggregate through Track.
type Writer[T any] interface {
	// Add inserts a transient aggregate and returns its generated id.
	// Uniqueness and reference violations fail with a Conflict error.
	Add(ctx context.Context, item T) (int64, error)

	// Update writes a stored aggregate. A concurrent modification or a constraint
	// violation fails with a Conflict error.
	Update(ctx context.Context, item T) error
}

// Deleter removes every row matching a spec. Zero matches fail with NotFound;
// an unconditional spec is refused.
type Deleter interface {
	Delete(ctx context.Context, spec query.Spec) error
}

// Column names usable in query specs.
const (
	ColumnID             = "id"
	ColumnCreatedOn      = "created_on"
	ColumnLastModifiedOn = "last_modified_on"

	ColumnUserEmail     = "email"
	ColumnUserNfcSerial = "nfc_serial"

	ColumnRoleName = "name"

	ColumnParcelOwner     = "user_id"
	ColumnParcelPostBox   = "post_box_id"
	ColumnParcelStatus    = "delivery_status_id"
	ColumnParcelCategory  = "category_id"
	ColumnAssignmentUser  = "user_id"
	ColumnAssignmentRole  = "role_id"
	RelationUserRoles     = "Roles.Role"
	ColumnLockerOccupant  = "occupied_by_package_id"
	ColumnStatusLabelName = "name"
)

// UserRepository stores users. Specs may include RelationUserRoles to load roles.
type UserRepository interface {
	Finder[*user.User]
	Writer[*user.User]
}

// RoleRepository reads seeded roles.
type RoleRepository interface {
	Finder[*user.Role]
}

// AssignmentRepository stores user-role links.
type AssignmentRepository interface {
	Finder[*user.Assignment]
	Writer[*user.Assignment]
}

// ParcelRepository stores packages.
type ParcelRepository interface {
	Finder[*parcel.Parcel]
	Writer[*parcel.Parcel]
	Deleter
}

// StatusLabelRepository reads the delivery status reference table.
type StatusLabelRepository interface {
	Finder[*parcel.StatusLabel]
}

// CategoryRepository reads package categories.
type CategoryRepository interface {
	Finder[*parcel.Category]
}

// LockerRepository manages locker occupancy with conditional writes.
type LockerRepository interface {
	Finder[*locker.Locker]

	// Occupy stores the occupant of l, creating the locker row when needed.
	// It succeeds only if the slot is free or already holds the same package;
	// otherwise it fails with locker.ErrOccupied.
	Occupy(ctx context.Context, l *locker.Locker) error

	// Release frees postBoxID if packageID occupies it. Releasing a slot that
	// holds another package, or none, is a no-op.
	Release(ctx context.Context, postBoxID, packageID int64) error
}
