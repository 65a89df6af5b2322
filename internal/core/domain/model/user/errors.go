package user

import "postbox/internal/pkg/errs"

var (
	ErrSerialRequired  = errs.Validation("nfc.INVALID_SERIAL", "Serial number cannot be empty")
	ErrCardNotFound    = errs.NotFound("nfc.NOT_FOUND", "NFC card not found")
	ErrSerialTaken     = errs.Conflict("nfc.ALREADY_REGISTERED", "NFC card is already registered")
	ErrInvalidCardData = errs.Validation("nfc.INVALID_DATA", "Serial number and UserId are required")

	ErrNotFound      = errs.NotFound("auth.USER_NOT_FOUND", "User not found")
	ErrAlreadyExists = errs.Conflict("user.ALREADY_EXISTS", "User with this email already exists")
	ErrInvalidEmail  = errs.Validation("user.INVALID_EMAIL", "Invalid email address")

	ErrRoleNotFound = errs.NotFound("role.NOT_FOUND", "Role not found")
)
