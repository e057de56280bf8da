package usecase

import (
	"context"
	"time"

	"brme/internal/event"
	"brme/internal/model"
	"brme/internal/temporal"
)

// Resolve runs the temporal engine for one sentence.
func (uc *implUseCase) Resolve(ctx context.Context, sc model.Scope, input event.ResolveInput) (event.ResolveOutput, error) {
	base := input.BaseDate
	if base.IsZero() {
		base = uc.now()
	}

	started := time.Now()
	res, err := temporal.ResolveDetailed(ctx, input.Text, temporal.Options{
		TimezoneName:   uc.timezoneName,
		TimezoneOffset: uc.timezoneOffset,
		BaseDate:       base,
		Estimator:      uc.estimator,
	})
	elapsed := time.Since(started)
	if err != nil {
		uc.l.Warn(ctx, "event resolution failed",
			"source", sc.Source,
			"user_id", sc.UserID,
			"estimator", uc.estimatorName,
			"elapsed_ms", elapsed.Milliseconds(),
			"error", err.Error(),
		)
		return event.ResolveOutput{}, err
	}

	uc.l.Info(ctx, "event resolved",
		"source", sc.Source,
		"user_id", sc.UserID,
		"estimator", uc.estimatorName,
		"rule", string(res.Rule),
		"start", res.Event.Start,
		"elapsed_ms", elapsed.Milliseconds(),
	)

	return event.ResolveOutput{
		Event:      res.Event,
		Rule:       res.Rule,
		Normalized: res.Normalized,
		BaseDate:   base,
	}, nil
}
