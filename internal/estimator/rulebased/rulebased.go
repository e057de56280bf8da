// Package rulebased estimates events with olebedev/when and its Brazilian
// Portuguese rules. No network, no model: the guess is only as good as the
// grammar, which is why the override layer re-derives the date afterwards.
package rulebased

import (
	"context"
	"regexp"
	"strconv"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/br"
	"github.com/olebedev/when/rules/common"
	"github.com/pkg/errors"

	"brme/internal/temporal"
	"brme/pkg/datemath"
)

// rangeRe matches clock ranges such as "14h-16h", "14:30-16:00" or "9h até 11h".
var rangeRe = regexp.MustCompile(`(?i)(\d{1,2})(?:\s*h|:(\d{2}))\s*(?:-|–|até|a)\s*(\d{1,2})(?:\s*h|:(\d{2}))`)

// Parser is the subset of *when.Parser used here.
type Parser interface {
	Parse(text string, base time.Time) (*when.Result, error)
}

// Estimator is a temporal.Estimator backed by a rule-based date parser.
type Estimator struct {
	parser Parser
}

// New returns an Estimator using when with the br and common rule sets.
func New() *Estimator {
	w := when.New(nil)
	w.Add(br.All...)
	w.Add(common.All...)
	return &Estimator{parser: w}
}

// NewWithParser returns an Estimator using p.
func NewWithParser(p Parser) *Estimator {
	return &Estimator{parser: p}
}

// Estimate implements temporal.Estimator. The event lasts one hour unless the
// text spells out a clock range like "14h-16h". When the parser finds nothing
// but the text still carries a cue, the draft is anchored at ref.Now and the
// override layer picks the real date.
func (e *Estimator) Estimate(ctx context.Context, text string, ref temporal.Reference) (temporal.DraftEvent, error) {
	if err := ctx.Err(); err != nil {
		return temporal.DraftEvent{}, err
	}

	loc, err := datemath.ParseOffset(ref.TimezoneOffset)
	if err != nil {
		return temporal.DraftEvent{}, errors.Wrap(temporal.ErrInvalidOffset, err.Error())
	}
	now := ref.Now.In(loc)

	res, err := e.parser.Parse(text, now)
	if err != nil {
		return temporal.DraftEvent{}, errors.Wrapf(temporal.ErrEstimatorUnavailable, "rulebased: %v", err)
	}

	var (
		start   time.Time
		matched string
	)
	switch {
	case res != nil:
		start = res.Time.In(loc)
		matched = res.Text
	case !temporal.Collect(text).Empty():
		start = now
	default:
		return temporal.DraftEvent{}, errors.Wrap(temporal.ErrNoTemporalCueFound, temporal.HintNoCue)
	}

	start = datemath.TruncateToMinute(start)
	end := start.Add(time.Hour)
	if from, to, ok := clockRange(text); ok {
		start = datemath.AtClock(start, from[0], from[1], loc)
		end = datemath.AtClock(start, to[0], to[1], loc)
		if !end.After(start) {
			end = datemath.AddDays(end, 1)
		}
	}

	return temporal.DraftEvent{
		Title:    CleanTitle(text, matched),
		Start:    datemath.FormatTimestamp(start, loc, ref.TimezoneOffset),
		End:      datemath.FormatTimestamp(end, loc, ref.TimezoneOffset),
		Timezone: ref.TimezoneName,
	}, nil
}

// clockRange returns the [hour, minute] pairs of the first valid clock range in text.
func clockRange(text string) (from, to [2]int, ok bool) {
	m := rangeRe.FindStringSubmatch(text)
	if m == nil {
		return from, to, false
	}

	from, okFrom := clock(m[1], m[2])
	to, okTo := clock(m[3], m[4])
	return from, to, okFrom && okTo
}

func clock(hour, minute string) ([2]int, bool) {
	h, _ := strconv.Atoi(hour)
	mm := 0
	if minute != "" {
		mm, _ = strconv.Atoi(minute)
	}
	if h > 23 || mm > 59 {
		return [2]int{}, false
	}
	return [2]int{h, mm}, true
}
