package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var offsetPattern = regexp.MustCompile(`^([+-])(\d{2}):?(\d{2})$`)

// ParseOffset converts a literal UTC offset ("-03:00", "+0530", "Z") into a fixed zone.
// The zone is named after the offset so formatted times keep the caller's literal.
func ParseOffset(offset string) (*time.Location, error) {
	if offset == "Z" || offset == "+00:00" || offset == "-00:00" {
		return time.FixedZone(offset, 0), nil
	}

	m := offsetPattern.FindStringSubmatch(offset)
	if m == nil {
		return nil, fmt.Errorf("invalid offset %q", offset)
	}

	hours, _ := strconv.Atoi(m[2])
	minutes, _ := strconv.Atoi(m[3])
	if hours > 14 || minutes > 59 {
		return nil, fmt.Errorf("offset %q out of range", offset)
	}

	seconds := hours*3600 + minutes*60
	if m[1] == "-" {
		seconds = -seconds
	}
	return time.FixedZone(offset, seconds), nil
}

// MustParseOffset is like ParseOffset but panics on error. Intended for tests and constants.
func MustParseOffset(offset string) *time.Location {
	loc, err := ParseOffset(offset)
	if err != nil {
		panic(err)
	}
	return loc
}
