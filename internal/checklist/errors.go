package checklist

import "errors"

// Domain-specific errors for the checklist package.
var (
	ErrNoUser         = errors.New("no authenticated user")
	ErrUnknownItem    = errors.New("item not in checklist catalog")
	ErrInvalidDate    = errors.New("date must be formatted YYYY-MM-DD")
	ErrToggleInFlight = errors.New("toggle already in flight for this item")
)
