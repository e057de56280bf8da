package repository

import "time"

// CreateEventOptions holds the parameters for inserting a calendar event.
type CreateEventOptions struct {
	CalendarID string // Defaults to the repository's calendar when empty
	Title      string
	Start      time.Time
	End        time.Time
	Timezone   string // IANA name sent alongside the offset timestamps
	Location   string
	Notes      string
}
