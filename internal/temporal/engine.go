package temporal

import (
	"context"
	"fmt"
	"strings"

	"brme/pkg/datemath"
)

// Resolve turns a Portuguese event sentence into a ResolvedEvent. It is
// all-or-nothing: any failure returns the zero event and an error matching one
// of the package sentinels.
func Resolve(ctx context.Context, text string, opts Options) (ResolvedEvent, error) {
	res, err := ResolveDetailed(ctx, text, opts)
	if err != nil {
		return ResolvedEvent{}, err
	}
	return res.Event, nil
}

// ResolveDetailed is Resolve but also reports the normalized text, the cues
// found and the override rule that fired.
func ResolveDetailed(ctx context.Context, text string, opts Options) (Resolution, error) {
	if strings.TrimSpace(text) == "" {
		return Resolution{}, ErrEmptyInput
	}
	loc, err := datemath.ParseOffset(opts.TimezoneOffset)
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: %v", ErrInvalidOffset, err)
	}
	if opts.BaseDate.IsZero() {
		return Resolution{}, ErrMissingBaseDate
	}
	if opts.Estimator == nil {
		return Resolution{}, ErrNoEstimator
	}

	normalized := Normalize(text)
	base := opts.BaseDate.In(loc)

	cuesCh := make(chan Cues, 1)
	go func() {
		cuesCh <- Collect(normalized)
	}()

	draft, err := opts.Estimator.Estimate(ctx, normalized, Reference{
		Now:            base,
		TimezoneName:   opts.TimezoneName,
		TimezoneOffset: opts.TimezoneOffset,
	})
	cues := <-cuesCh
	if err != nil {
		if isKnown(err) {
			return Resolution{}, err
		}
		return Resolution{}, fmt.Errorf("%w: %w", ErrEstimatorUnavailable, err)
	}

	start, err := datemath.ParseTimestamp(draft.Start, loc)
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: %w: start: %v", ErrMalformedEstimatorOutput, ErrInvalidTimestamp, err)
	}
	end, err := datemath.ParseTimestamp(draft.End, loc)
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: %w: end: %v", ErrMalformedEstimatorOutput, ErrInvalidTimestamp, err)
	}

	start, end, rule := Override(cues, start, end, base, loc)

	overridden := draft
	overridden.Start = datemath.FormatTimestamp(start, loc, opts.TimezoneOffset)
	overridden.End = datemath.FormatTimestamp(end, loc, opts.TimezoneOffset)

	event, err := Sanitize(overridden, opts.TimezoneName, loc, opts.TimezoneOffset)
	if err != nil {
		return Resolution{}, err
	}

	return Resolution{
		Event:      event,
		Rule:       rule,
		Normalized: normalized,
		Cues:       cues,
	}, nil
}
