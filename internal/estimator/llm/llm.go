// Package llm estimates events by prompting a language model through
// pkg/llmprovider and validating the JSON it answers with.
package llm

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"brme/internal/temporal"
	"brme/pkg/datemath"
	"brme/pkg/llmprovider"
)

// DefaultTemperature keeps the model close to deterministic.
const DefaultTemperature = 0.1

// Generator is the part of llmprovider.Manager the estimator needs.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Estimator is a temporal.Estimator backed by a language model.
type Estimator struct {
	gen         Generator
	temperature float64
}

// New returns an Estimator that calls gen once per sentence.
func New(gen Generator) *Estimator {
	return &Estimator{gen: gen, temperature: DefaultTemperature}
}

// Estimate implements temporal.Estimator.
func (e *Estimator) Estimate(ctx context.Context, text string, ref temporal.Reference) (temporal.DraftEvent, error) {
	loc, err := datemath.ParseOffset(ref.TimezoneOffset)
	if err != nil {
		return temporal.DraftEvent{}, errors.Wrap(temporal.ErrInvalidOffset, err.Error())
	}

	resp, err := e.gen.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: systemPrompt,
		Messages: []llmprovider.Message{{
			Role: llmprovider.RoleUser,
			Text: BuildPrompt(text, ref.Now, loc, ref.TimezoneName, ref.TimezoneOffset),
		}},
		Temperature: e.temperature,
		JSONMode:    true,
	})
	if err != nil {
		return temporal.DraftEvent{}, fmt.Errorf("%w: %w", temporal.ErrEstimatorUnavailable, err)
	}

	return ParseDraft(resp.Text, loc)
}
