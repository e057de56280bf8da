package gcalendar

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// NewOAuth2Config builds the oauth2 client used both for consent and for token refresh.
func NewOAuth2Config(cfg OAuthConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURI,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}
}

// AuthCodeURL returns the consent page URL. Offline access with a forced consent
// prompt makes Google issue a refresh token every time.
func AuthCodeURL(cfg OAuthConfig, state string) (string, error) {
	if err := cfg.Validate(false); err != nil {
		return "", err
	}
	return NewOAuth2Config(cfg).AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce), nil
}

// ExchangeRefreshToken trades an authorization code for a refresh token.
func ExchangeRefreshToken(ctx context.Context, cfg OAuthConfig, code string) (string, error) {
	if err := cfg.Validate(false); err != nil {
		return "", err
	}
	tok, err := NewOAuth2Config(cfg).Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	if tok.RefreshToken == "" {
		return "", ErrNoRefreshToken
	}
	return tok.RefreshToken, nil
}
