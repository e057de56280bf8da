package temporal

import "errors"

var (
	ErrEstimatorUnavailable     = errors.New("estimator unavailable")
	ErrMalformedEstimatorOutput = errors.New("malformed estimator output")
	ErrInvalidTimestamp         = errors.New("invalid timestamp")
	ErrNoTemporalCueFound       = errors.New("no temporal cue found")
	ErrEmptyInput               = errors.New("empty input")
	ErrInvalidOffset            = errors.New("invalid timezone offset")
	ErrMissingBaseDate          = errors.New("missing base date")
	ErrNoEstimator              = errors.New("no estimator configured")
)

// HintNoCue is the user-facing example shown when no date or time was recognized.
const HintNoCue = "Não entendi a data/hora. Ex: 'brme hoje 18h academia' ou 'brme amanhã 14:30 reunião'"

var known = []error{
	ErrEstimatorUnavailable,
	ErrMalformedEstimatorOutput,
	ErrInvalidTimestamp,
	ErrNoTemporalCueFound,
}

// isKnown reports whether err already carries one of the estimator failure kinds.
func isKnown(err error) bool {
	for _, k := range known {
		if errors.Is(err, k) {
			return true
		}
	}
	return false
}
