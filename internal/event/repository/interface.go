package repository

import (
	"context"

	"brme/internal/model"
)

// CalendarRepository stores resolved events in an external calendar.
type CalendarRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.CalendarEvent, error)
}
