package event

import (
	"context"

	"brme/internal/model"
)

// UseCase defines the business logic interface for the event domain.
type UseCase interface {
	// Resolve turns a Portuguese sentence into a ResolvedEvent without side effects.
	Resolve(ctx context.Context, sc model.Scope, input ResolveInput) (ResolveOutput, error)

	// Create resolves the sentence and inserts the event into the calendar.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
}
