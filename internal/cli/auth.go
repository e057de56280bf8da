package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"brme/pkg/gcalendar"
)

func newAuthCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Authorize Google Calendar and print a refresh token",
		Long: `Auth runs the OAuth consent flow once for the configured client
(GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET, GOOGLE_REDIRECT_URI) and prints
the GOOGLE_REFRESH_TOKEN line to put in your environment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuth(cmd, root)
		},
	}
}

func runAuth(cmd *cobra.Command, root *rootOptions) error {
	cfg, _, err := root.load()
	if err != nil {
		return err
	}

	oauthCfg := gcalendar.OAuthConfig{
		ClientID:     cfg.GoogleCalendar.ClientID,
		ClientSecret: cfg.GoogleCalendar.ClientSecret,
		RedirectURI:  cfg.GoogleCalendar.RedirectURI,
	}
	authURL, err := gcalendar.AuthCodeURL(oauthCfg, uuid.NewString())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\n1) Abra esta URL no navegador:")
	fmt.Fprintln(out, "\n"+authURL)
	fmt.Fprintln(out, "\n2) Faça login, autorize, copie o 'code' e cole aqui.")
	fmt.Fprint(out, "\ncode: ")

	code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	code = strings.TrimSpace(code)
	if code == "" {
		if err != nil {
			return fmt.Errorf("read authorization code: %w", err)
		}
		return errors.New("empty authorization code")
	}

	token, err := gcalendar.ExchangeRefreshToken(cmd.Context(), oauthCfg, code)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\n✅ Cole no seu .env:")
	fmt.Fprintf(out, "\nGOOGLE_REFRESH_TOKEN=%s\n", token)
	return nil
}
