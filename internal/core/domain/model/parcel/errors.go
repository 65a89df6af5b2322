package parcel

import "postbox/internal/pkg/errs"

var (
	ErrNotFound                = errs.NotFound("package.NOT_FOUND", "Package not found")
	ErrInvalidStatus           = errs.Validation("package.INVALID_STATUS", "Invalid delivery status")
	ErrInvalidStatusTransition = errs.Validation("package.INVALID_STATUS_TRANSITION", "Invalid status transition")
	ErrInvalidPostBox          = errs.Validation("package.INVALID_POSTBOX", "Post box id must be positive")
	ErrLockerNotBound          = errs.Forbidden("package.LOCKER_NOT_BOUND", "Locker is not bound to this client")
	ErrNotCourier              = errs.Forbidden("package.NOT_COURIER", "User is not a courier")
	ErrNoDeliveredPackages     = errs.NotFound("package.NO_DELIVERED_PACKAGES", "No delivered packages found for this user")
	ErrStatusNotFound          = errs.NotFound("status.NOT_FOUND", "Status not found")
	ErrCategoryNotFound        = errs.NotFound("category.NOT_FOUND", "Package category not found")
)
