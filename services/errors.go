// services/errors.go
package services

import "errors"

// Sentinel errors returned by the booking core. Controllers match these with
// errors.Is and decide the HTTP presentation; nothing here is retried.
var (
	ErrInvalidDateRange      = errors.New("invalid_date_range")
	ErrInvalidAmount         = errors.New("invalid_amount")
	ErrOccupancyExceeded     = errors.New("occupancy_exceeded")
	ErrMissingGuestField     = errors.New("missing_guest_field")
	ErrInsufficientInventory = errors.New("insufficient_inventory")
	ErrInvalidTransition     = errors.New("invalid_transition")
	ErrAlreadyCancelled      = errors.New("already_cancelled")
	ErrNotFound              = errors.New("not_found")
	ErrForbidden             = errors.New("forbidden")

	// ErrInvalidInput covers malformed non-booking payloads (hotel forms,
	// registration fields).
	ErrInvalidInput = errors.New("invalid_input")
)
