// Package errs provides standardized error types for the postbox application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package has two layers:
//
// Value errors describe why a single value was rejected:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//
// Coded errors (*Error) carry a Kind, a stable machine-readable code such as
// "nfc.NOT_FOUND" and a human message. Every expected failure that reaches the
// transport layer is either a coded error or a value error; KindOf classifies both,
// and anything else is treated as KindInternal.
//
// Each value error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
package errs
