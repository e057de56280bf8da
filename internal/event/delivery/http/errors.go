package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"brme/internal/event"
	"brme/internal/temporal"
	"brme/pkg/response"
)

var (
	errEmptyText       = errors.New("text is required")
	errInvalidBaseDate = errors.New("base_date must be RFC3339, e.g. 2025-01-06T10:00:00-03:00")
)

// writeError translates domain/use-case errors into the response envelope.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, temporal.ErrNoTemporalCueFound):
		response.Error(c, errors.New(temporal.HintNoCue), nil)
	case errors.Is(err, temporal.ErrEmptyInput),
		errors.Is(err, temporal.ErrMalformedEstimatorOutput),
		errors.Is(err, temporal.ErrInvalidTimestamp),
		errors.Is(err, event.ErrCalendarNotConfigured):
		response.Error(c, err, nil)
	case errors.Is(err, temporal.ErrEstimatorUnavailable),
		errors.Is(err, event.ErrCalendarUnavailable):
		response.Upstream(c, err)
	case errors.Is(err, temporal.ErrInvalidOffset),
		errors.Is(err, temporal.ErrMissingBaseDate),
		errors.Is(err, temporal.ErrNoEstimator):
		h.l.Errorf(c.Request.Context(), "event http: resolver misconfigured: %v", err)
		response.InternalError(c, err)
	default:
		h.l.Errorf(c.Request.Context(), "event http: unmapped error: %v", err)
		response.InternalError(c, err)
	}
}
