package usecase

import (
	"context"
	"fmt"

	"brme/internal/event"
	"brme/internal/event/repository"
	"brme/internal/model"
	"brme/internal/temporal"
	"brme/pkg/datemath"
)

// Create resolves the sentence and inserts it into the calendar.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input event.CreateInput) (event.CreateOutput, error) {
	if uc.calendarRepo == nil {
		return event.CreateOutput{}, event.ErrCalendarNotConfigured
	}

	resolved, err := uc.Resolve(ctx, sc, event.ResolveInput{Text: input.Text, BaseDate: input.BaseDate})
	if err != nil {
		return event.CreateOutput{}, err
	}

	opt, err := uc.createOptions(resolved.Event, input.CalendarID)
	if err != nil {
		return event.CreateOutput{}, err
	}

	created, err := uc.calendarRepo.CreateEvent(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "event usecase: calendar insert failed: %v", err)
		return event.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "event usecase: created calendar event %s in %s", created.ID, created.CalendarID)

	return event.CreateOutput{
		Event:    resolved.Event,
		Rule:     resolved.Rule,
		Calendar: created,
	}, nil
}

func (uc *implUseCase) createOptions(ev temporal.ResolvedEvent, calendarID string) (repository.CreateEventOptions, error) {
	loc, err := datemath.ParseOffset(uc.timezoneOffset)
	if err != nil {
		return repository.CreateEventOptions{}, fmt.Errorf("%w: %w", temporal.ErrInvalidOffset, err)
	}
	start, err := datemath.ParseTimestamp(ev.Start, loc)
	if err != nil {
		return repository.CreateEventOptions{}, fmt.Errorf("%w: start: %w", temporal.ErrInvalidTimestamp, err)
	}
	end, err := datemath.ParseTimestamp(ev.End, loc)
	if err != nil {
		return repository.CreateEventOptions{}, fmt.Errorf("%w: end: %w", temporal.ErrInvalidTimestamp, err)
	}

	return repository.CreateEventOptions{
		CalendarID: calendarID,
		Title:      ev.Title,
		Start:      start,
		End:        end,
		Timezone:   ev.Timezone,
		Location:   ev.Location,
		Notes:      ev.Notes,
	}, nil
}
