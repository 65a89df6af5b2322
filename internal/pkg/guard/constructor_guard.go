// Package guard provides ConstructorGuard, a marker that distinguishes values built
// by their constructor from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and value objects whose
// invariants are checked once in a constructor. A zero-value guard fails validation.
//
// Example usage:
//
//	var ErrPlaceInLockerCommandIsNotConstructed = errors.New(
//	    "PlaceInLockerCommand must be created via NewPlaceInLockerCommand constructor",
//	)
//
//	type PlaceInLockerCommand struct {
//	    packageID int64
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c PlaceInLockerCommand) Validate() error {
//	    return c.guard.Validate(ErrPlaceInLockerCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns validationError,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
