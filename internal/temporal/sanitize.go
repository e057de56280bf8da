package temporal

import (
	"fmt"
	"strings"
	"time"

	"brme/pkg/datemath"
)

// Sanitize turns an overridden draft into a ResolvedEvent: timestamps are parsed
// and re-rendered at minute precision in loc, end is pushed to start+1h when it
// is not after start, the timezone is forced to timezoneName and text fields
// are trimmed.
func Sanitize(draft DraftEvent, timezoneName string, loc *time.Location, offset string) (ResolvedEvent, error) {
	start, err := datemath.ParseTimestamp(draft.Start, loc)
	if err != nil {
		return ResolvedEvent{}, fmt.Errorf("%w: start: %v", ErrInvalidTimestamp, err)
	}
	end, err := datemath.ParseTimestamp(draft.End, loc)
	if err != nil {
		return ResolvedEvent{}, fmt.Errorf("%w: end: %v", ErrInvalidTimestamp, err)
	}

	start = datemath.TruncateToMinute(start)
	end = datemath.TruncateToMinute(end)
	if !end.After(start) {
		end = start.Add(time.Hour)
	}

	title := strings.TrimSpace(draft.Title)
	if title == "" {
		title = DefaultTitle
	}

	return ResolvedEvent{
		Title:    title,
		Start:    datemath.FormatTimestamp(start, loc, offset),
		End:      datemath.FormatTimestamp(end, loc, offset),
		Timezone: timezoneName,
		Location: strings.TrimSpace(draft.Location),
		Notes:    strings.TrimSpace(draft.Notes),
	}, nil
}
