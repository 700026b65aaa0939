package catalog

import "errors"

// Sentinel errors surfaced to handlers, which map them onto the HTTP
// error taxonomy (400/403/404).
var (
	ErrMissingFields    = errors.New("please provide all required fields: name, category, description, price")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrInvalidPriceType = errors.New("invalid priceType; must be: hourly, fixed, or daily")
	ErrServiceNotFound  = errors.New("service not found")
	ErrNotOwner         = errors.New("not authorized to modify this service")
)
