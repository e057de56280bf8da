package model

import "time"

// CalendarEvent is an event stored in an external calendar.
type CalendarEvent struct {
	ID         string    // Provider event id
	CalendarID string    // Calendar it was inserted into
	HTMLLink   string    // Deep link for the user (may be empty)
	Title      string
	Start      time.Time
	End        time.Time
	Timezone   string
	Location   string
	Notes      string
	CreatedAt  time.Time
}
