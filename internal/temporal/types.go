package temporal

import (
	"context"
	"time"
)

// DefaultTitle replaces an empty title after trimming.
const DefaultTitle = "Lembrete"

// DraftEvent is the untrusted first-pass guess produced by an Estimator.
// Start and End are timestamp strings as the estimator rendered them.
type DraftEvent struct {
	Title    string `json:"title"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Timezone string `json:"timezone"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

// ResolvedEvent is the final event. End is always after Start, both rendered as
// YYYY-MM-DDTHH:mm:00 plus the canonical offset.
type ResolvedEvent struct {
	Title    string `json:"title"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Timezone string `json:"timezone"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

// Reference is the context an Estimator receives besides the text.
type Reference struct {
	Now            time.Time
	TimezoneName   string
	TimezoneOffset string
}

// Estimator produces a best-effort DraftEvent from normalized text.
type Estimator interface {
	Estimate(ctx context.Context, text string, ref Reference) (DraftEvent, error)
}

// EstimatorFunc adapts a plain function to Estimator.
type EstimatorFunc func(ctx context.Context, text string, ref Reference) (DraftEvent, error)

func (f EstimatorFunc) Estimate(ctx context.Context, text string, ref Reference) (DraftEvent, error) {
	return f(ctx, text, ref)
}

// Options configures a single Resolve call.
type Options struct {
	TimezoneName   string
	TimezoneOffset string
	// BaseDate is the "now" every relative expression is resolved against.
	BaseDate  time.Time
	Estimator Estimator
}

// Rule identifies which override rule decided the final start.
type Rule string

const (
	RuleExplicitDate Rule = "explicit_date"
	RuleRelativeDay  Rule = "relative_day"
	RuleWeekday      Rule = "weekday"
	RuleEstimator    Rule = "estimator"
)

// Resolution is a ResolvedEvent plus the details of how it was reached.
type Resolution struct {
	Event      ResolvedEvent
	Rule       Rule
	Normalized string
	Cues       Cues
}
