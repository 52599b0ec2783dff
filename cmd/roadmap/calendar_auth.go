package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"gdd-roadmap/internal/render"
	"gdd-roadmap/pkg/gcalendar"
)

// runCalendarAuth runs the Desktop OAuth consent flow once and stores token.json.
func runCalendarAuth(cmd *cobra.Command, args []string) error {
	credsPath := args[0]
	data, err := os.ReadFile(credsPath)
	if err != nil {
		return fmt.Errorf("failed to read credentials file %q: %w", credsPath, err)
	}

	oauthCfg, err := gcalendar.OAuthConfig(data)
	if err != nil {
		return fmt.Errorf("%w (use OAuth Desktop App credentials)", err)
	}

	p := render.New(cmd.OutOrStdout(), 0)
	p.Heading("Step 1: open this URL and sign in with your Google account")
	fmt.Fprintln(cmd.OutOrStdout(), oauthCfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
	p.Heading("Step 2: paste the authorization code and press Enter")

	code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && strings.TrimSpace(code) == "" {
		return fmt.Errorf("failed to read authorization code: %w", err)
	}

	tok, err := oauthCfg.Exchange(cmd.Context(), strings.TrimSpace(code))
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	tokenPath := gcalendar.TokenPath(credsPath)
	if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
		return err
	}
	p.Success("Token saved to %s, restart the API to enable calendar sync", tokenPath)
	return nil
}
