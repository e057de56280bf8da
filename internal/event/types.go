package event

import (
	"time"

	"brme/internal/model"
	"brme/internal/temporal"
)

// ResolveInput is the input for event resolution.
type ResolveInput struct {
	Text string
	// BaseDate overrides the use case clock; zero means "now".
	BaseDate time.Time
}

// ResolveOutput is the resolved event plus how it was reached.
type ResolveOutput struct {
	Event      temporal.ResolvedEvent
	Rule       temporal.Rule
	Normalized string
	BaseDate   time.Time
}

// CreateInput is the input for resolving and creating a calendar event.
type CreateInput struct {
	Text       string
	BaseDate   time.Time
	CalendarID string // empty means the configured calendar
}

// CreateOutput is the result of Create.
type CreateOutput struct {
	Event    temporal.ResolvedEvent
	Rule     temporal.Rule
	Calendar model.CalendarEvent
}
