package datemath_test

import (
	"testing"
	"time"

	"brme/pkg/datemath"
)

func TestParseOffset(t *testing.T) {
	tests := []struct {
		name    string
		offset  string
		seconds int
		wantErr bool
	}{
		{name: "Brasilia", offset: "-03:00", seconds: -3 * 3600},
		{name: "Compact", offset: "+0530", seconds: 5*3600 + 30*60},
		{name: "UTC", offset: "Z", seconds: 0},
		{name: "Zero", offset: "+00:00", seconds: 0},
		{name: "Missing sign", offset: "03:00", wantErr: true},
		{name: "Garbage", offset: "America/Sao_Paulo", wantErr: true},
		{name: "Out of range", offset: "+15:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := datemath.ParseOffset(tt.offset)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOffset(%q) error = %v, wantErr %v", tt.offset, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			_, got := time.Date(2025, 1, 1, 0, 0, 0, 0, loc).Zone()
			if got != tt.seconds {
				t.Errorf("offset seconds = %d, want %d", got, tt.seconds)
			}
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	loc := datemath.MustParseOffset("-03:00")
	ts := time.Date(2025, 1, 7, 12, 5, 42, 0, time.UTC)

	got := datemath.FormatTimestamp(ts, loc, "-03:00")
	want := "2025-01-07T09:05:00-03:00"
	if got != want {
		t.Errorf("FormatTimestamp() = %q, want %q", got, want)
	}
}

func TestParseTimestamp(t *testing.T) {
	loc := datemath.MustParseOffset("-03:00")
	want := time.Date(2025, 1, 7, 9, 0, 0, 0, loc)

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "Canonical", value: "2025-01-07T09:00:00-03:00"},
		{name: "UTC", value: "2025-01-07T12:00:00Z"},
		{name: "No seconds", value: "2025-01-07T09:00-03:00"},
		{name: "Local", value: "2025-01-07T09:00:00"},
		{name: "Local space", value: "2025-01-07 09:00"},
		{name: "Empty", value: "  ", wantErr: true},
		{name: "Garbage", value: "amanhã", wantErr: true},
		{name: "Invalid month", value: "2025-13-07T09:00:00-03:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datemath.ParseTimestamp(tt.value, loc)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimestamp(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(want) {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.value, got, want)
			}
		})
	}
}

func TestNextWeekday(t *testing.T) {
	loc := datemath.MustParseOffset("-03:00")
	base := time.Date(2025, 1, 8, 15, 30, 0, 0, loc) // Wednesday

	tests := []struct {
		name   string
		target time.Weekday
		want   int
	}{
		{name: "Same day is inclusive", target: time.Wednesday, want: 8},
		{name: "Later this week", target: time.Friday, want: 10},
		{name: "Wraps to next week", target: time.Monday, want: 13},
		{name: "Sunday", target: time.Sunday, want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := datemath.NextWeekday(base, tt.target)
			if got.Day() != tt.want || got.Weekday() != tt.target {
				t.Errorf("NextWeekday() = %v, want day %d", got, tt.want)
			}
		})
	}
}

func TestAtClock(t *testing.T) {
	loc := datemath.MustParseOffset("-03:00")
	day := time.Date(2025, 1, 8, 2, 0, 0, 0, time.UTC) // still Jan 7 in -03:00

	got := datemath.AtClock(day, 18, 30, loc)
	want := time.Date(2025, 1, 7, 18, 30, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("AtClock() = %v, want %v", got, want)
	}
}
