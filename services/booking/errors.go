package booking

import "errors"

// Sentinel errors surfaced to handlers, which map them onto the HTTP
// error taxonomy (400/403/404).
var (
	ErrMissingFields   = errors.New("please provide all required fields")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidPayment  = errors.New("invalid payment method")
	ErrServiceNotFound = errors.New("service not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrNotAuthorized   = errors.New("not authorized to update this booking")
)
