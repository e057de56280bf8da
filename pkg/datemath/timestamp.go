package datemath

import (
	"fmt"
	"strings"
	"time"
)

// minuteLayout renders a timestamp with seconds forced to zero; the offset is appended verbatim.
const minuteLayout = "2006-01-02T15:04:00"

var (
	offsetLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04Z07:00",
		"2006-01-02 15:04:05Z07:00",
		"2006-01-02T15:04:05-0700",
	}
	localLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
	}
)

// FormatTimestamp renders t in loc as YYYY-MM-DDTHH:mm:00 followed by the offset literal.
func FormatTimestamp(t time.Time, loc *time.Location, offset string) string {
	return t.In(loc).Format(minuteLayout) + offset
}

// ParseTimestamp parses an ISO-8601-like timestamp. Values without an offset are read in loc.
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

// TruncateToMinute drops seconds and sub-second precision.
func TruncateToMinute(t time.Time) time.Time {
	return t.Truncate(time.Minute)
}
