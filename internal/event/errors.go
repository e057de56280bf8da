package event

import "errors"

// Domain-specific errors for the event package.
var (
	ErrCalendarUnavailable   = errors.New("calendar unavailable")
	ErrCalendarNotConfigured = errors.New("google calendar is not configured")
)
