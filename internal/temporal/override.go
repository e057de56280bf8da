package temporal

import (
	"time"

	"brme/pkg/datemath"
)

// minDuration is the floor applied to the estimator's event length.
const minDuration = time.Hour

// Override re-derives start and end from the cues, trusting the estimator only
// where the text is silent. Rules are tried in order and the first one that
// applies wins:
//
//	A. explicit date: that date (year defaults to base's), no rollover.
//	B. hoje/amanhã: base day (+1 for amanhã); hoje rolls to the next day when not after base.
//	C. weekday: next occurrence on or after base; the same weekday rolls a week when not after base.
//	D. nothing: the estimator's start and end are returned untouched.
//
// For A to C the clock comes from the explicit time cue, falling back to the
// estimator's start, and end = start + max(1h, estimator duration).
func Override(cues Cues, start, end, base time.Time, loc *time.Location) (time.Time, time.Time, Rule) {
	duration := max(end.Sub(start), minDuration)

	local := start.In(loc)
	hour, minute := local.Hour(), local.Minute()
	if cues.Time != nil {
		hour, minute = cues.Time.Hour, cues.Time.Minute
	}

	base = base.In(loc)

	var (
		fixed time.Time
		rule  Rule
	)
	switch {
	case cues.Date != nil:
		year := cues.Date.Year
		if year == 0 {
			year = base.Year()
		}
		fixed = time.Date(year, time.Month(cues.Date.Month), cues.Date.Day, hour, minute, 0, 0, loc)
		rule = RuleExplicitDate

	case cues.Relative != nil:
		day := base
		if cues.Relative.Which == Tomorrow {
			day = datemath.AddDays(base, 1)
		}
		fixed = datemath.AtClock(day, hour, minute, loc)
		if cues.Relative.Which == Today && !fixed.After(base) {
			fixed = datemath.AddDays(fixed, 1)
		}
		rule = RuleRelativeDay

	case cues.Weekday != nil:
		target := cues.Weekday.Index
		fixed = datemath.AtClock(datemath.NextWeekday(base, target), hour, minute, loc)
		if target == base.Weekday() && !fixed.After(base) {
			fixed = datemath.AddDays(fixed, 7)
		}
		rule = RuleWeekday

	default:
		return start, end, RuleEstimator
	}

	return fixed, fixed.Add(duration), rule
}
