package review

import "errors"

// Sentinel errors surfaced to handlers, which map them onto the HTTP
// error taxonomy (400/403/404).
var (
	ErrMissingFields   = errors.New("please provide all required fields")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrServiceMismatch = errors.New("service does not match the referenced booking")
	ErrBookingNotFound = errors.New("booking not found")
	ErrReviewNotFound  = errors.New("review not found")
	ErrNotAuthorized   = errors.New("not authorized to review this service")
	ErrNotAuthor       = errors.New("not authorized to modify this review")
	ErrAlreadyReviewed = errors.New("this booking has already been reviewed")
)
