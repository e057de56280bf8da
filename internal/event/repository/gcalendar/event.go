package gcalendar

import (
	"context"
	"fmt"
	"time"

	"brme/internal/event"
	"brme/internal/event/repository"
	"brme/internal/model"
	pkgGCalendar "brme/pkg/gcalendar"
	pkgLog "brme/pkg/log"
)

// Inserter is the part of pkg/gcalendar.Client the repository uses.
type Inserter interface {
	CreateEvent(ctx context.Context, req pkgGCalendar.CreateEventRequest) (*pkgGCalendar.Event, error)
}

type implRepository struct {
	client     Inserter
	calendarID string
	l          pkgLog.Logger
	now        func() time.Time
}

// New creates a Google Calendar backed repository.
func New(client Inserter, calendarID string, l pkgLog.Logger) repository.CalendarRepository {
	if calendarID == "" {
		calendarID = pkgGCalendar.DefaultCalendarID
	}
	return &implRepository{
		client:     client,
		calendarID: calendarID,
		l:          l,
		now:        time.Now,
	}
}

func (r *implRepository) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.CalendarEvent, error) {
	calendarID := opt.CalendarID
	if calendarID == "" {
		calendarID = r.calendarID
	}

	created, err := r.client.CreateEvent(ctx, pkgGCalendar.CreateEventRequest{
		CalendarID:  calendarID,
		Summary:     opt.Title,
		Description: opt.Notes,
		Location:    opt.Location,
		StartTime:   opt.Start,
		EndTime:     opt.End,
		Timezone:    opt.Timezone,
	})
	if err != nil {
		r.l.Errorf(ctx, "gcalendar repository: failed to insert event into %s: %v", calendarID, err)
		return model.CalendarEvent{}, fmt.Errorf("%w: %w", event.ErrCalendarUnavailable, err)
	}

	return model.CalendarEvent{
		ID:         created.ID,
		CalendarID: calendarID,
		HTMLLink:   created.HtmlLink,
		Title:      opt.Title,
		Start:      opt.Start,
		End:        opt.End,
		Timezone:   opt.Timezone,
		Location:   opt.Location,
		Notes:      opt.Notes,
		CreatedAt:  r.now(),
	}, nil
}
