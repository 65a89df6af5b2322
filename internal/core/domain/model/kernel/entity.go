package kernel

import (
	"errors"
	"time"

	"postbox/internal/pkg/errs"
)

// Entity carries identity and audit timestamps. It is embedded by value in aggregates,
// which makes ID, CreatedOn and LastModifiedOn part of their public surface.
//
// Timestamps are never set by domain code. Repositories call Track after every
// successful write so the in-memory aggregate reflects what was stored.
type Entity struct {
	id             int64
	createdOn      time.Time
	lastModifiedOn time.Time
}

// RestoreEntity rebuilds the identity of a stored record.
//
// Returns:
//   - Entity with the given id and timestamps
//   - error if id is not positive or a timestamp is missing
func RestoreEntity(id int64, createdOn, lastModifiedOn time.Time) (Entity, error) {
	if id <= 0 {
		return Entity{}, errs.NewValueIsOutOfRangeError("id", id, 1, "max int64")
	}

	if err := errors.Join(
		requireTime("createdOn", createdOn),
		requireTime("lastModifiedOn", lastModifiedOn),
	); err != nil {
		return Entity{}, err
	}

	return Entity{id: id, createdOn: createdOn, lastModifiedOn: lastModifiedOn}, nil
}

// ID returns the storage identity, or 0 for a transient entity.
func (e Entity) ID() int64 {
	return e.id
}

// CreatedOn returns the first-insert timestamp (UTC).
func (e Entity) CreatedOn() time.Time {
	return e.createdOn
}

// LastModifiedOn returns the timestamp of the latest write (UTC).
func (e Entity) LastModifiedOn() time.Time {
	return e.lastModifiedOn
}

// IsTransient reports whether the entity has never been stored.
func (e Entity) IsTransient() bool {
	return e.id == 0
}

// Track records the identity and timestamps assigned by storage.
func (e *Entity) Track(id int64, createdOn, lastModifiedOn time.Time) {
	e.id = id
	e.createdOn = createdOn
	e.lastModifiedOn = lastModifiedOn
}

// Aggregate is implemented by every aggregate root that goes through a repository.
type Aggregate interface {
	Validate() error
	ID() int64
	CreatedOn() time.Time
	LastModifiedOn() time.Time
	Track(id int64, createdOn, lastModifiedOn time.Time)
}

func requireTime(name string, t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
