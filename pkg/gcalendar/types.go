package gcalendar

import (
	"fmt"
	"strings"
	"time"
)

// DefaultCalendarID is the authenticated user's main calendar.
const DefaultCalendarID = "primary"

// OAuthConfig holds the installed-app OAuth client and the long-lived refresh token.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	RefreshToken string
}

// Validate lists every missing field at once. RefreshToken is only checked when
// withToken is set, because the consent flow runs before one exists.
func (c OAuthConfig) Validate(withToken bool) error {
	var missing []string
	if c.ClientID == "" {
		missing = append(missing, "GOOGLE_CLIENT_ID")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "GOOGLE_CLIENT_SECRET")
	}
	if c.RedirectURI == "" {
		missing = append(missing, "GOOGLE_REDIRECT_URI")
	}
	if withToken && c.RefreshToken == "" {
		missing = append(missing, "GOOGLE_REFRESH_TOKEN")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing Google OAuth settings: %s", strings.Join(missing, ", "))
	}
	return nil
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "America/Sao_Paulo"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
}
