package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a failure independently of the operation that produced it.
// The transport layer derives its status code from the Kind alone.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindForbidden
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "Validation"
	case KindNotFound:
		return "NotFound"
	case KindConflict:
		return "Conflict"
	case KindForbidden:
		return "Forbidden"
	case KindUnauthorized:
		return "Unauthorized"
	default:
		return "InternalServerError"
	}
}

// CodeInternal is the only code ever exposed for failures that were not anticipated.
const CodeInternal = "general.INTERNAL_SERVER_ERROR"

// Error is a typed, coded failure.
//
// Two errors are considered the same by errors.Is when their codes match, so
// package-level sentinels can be compared against copies that carry a cause:
//
//	var ErrCardNotFound = errs.NotFound("nfc.NOT_FOUND", "NFC card not found")
//
//	err := ErrCardNotFound.WithCause(dbErr)
//	errors.Is(err, ErrCardNotFound) // true
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Cause   error
}

func newError(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func Validation(code, message string) *Error   { return newError(KindValidation, code, message) }
func NotFound(code, message string) *Error     { return newError(KindNotFound, code, message) }
func Conflict(code, message string) *Error     { return newError(KindConflict, code, message) }
func Forbidden(code, message string) *Error    { return newError(KindForbidden, code, message) }
func Unauthorized(code, message string) *Error { return newError(KindUnauthorized, code, message) }
func Internal(code, message string) *Error     { return newError(KindInternal, code, message) }

// WithCause returns a copy of e that wraps cause.
func (e *Error) WithCause(cause error) *Error {
	cp := *e
	cp.Cause = cause
	return &cp
}

// WithMessage returns a copy of e with a more specific message and the same code.
func (e *Error) WithMessage(format string, args ...any) *Error {
	cp := *e
	cp.Message = fmt.Sprintf(format, args...)
	return &cp
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// Describe returns the first coded error found in err's tree. Value errors are
// promoted to coded errors so callers only ever deal with one shape; anything
// unrecognised yields an internal error and ok == false.
func Describe(err error) (described *Error, ok bool) {
	var coded *Error
	if errors.As(err, &coded) {
		return coded, true
	}

	var (
		required   *ValueIsRequiredError
		invalid    *ValueIsInvalidError
		outOfRange *ValueIsOutOfRangeError
		notFound   *ObjectNotFoundError
	)
	switch {
	case errors.As(err, &required):
		return Validation("validation.VALUE_REQUIRED", required.Error()), true
	case errors.As(err, &outOfRange):
		return Validation("validation.VALUE_OUT_OF_RANGE", outOfRange.Error()), true
	case errors.As(err, &invalid):
		return Validation("validation.VALUE_INVALID", invalid.Error()), true
	case errors.As(err, &notFound):
		return NotFound("general.NOT_FOUND", notFound.Error()), true
	}

	return Internal(CodeInternal, "An unexpected error occurred"), false
}

// KindOf classifies err. Unknown errors are KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}
	described, _ := Describe(err)
	return described.Kind
}

// IsKind reports whether err classifies as kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
