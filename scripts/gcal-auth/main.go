// Command gcal-auth authorizes read-only Google Calendar access for the
// google backend when it is configured with OAuth Desktop credentials,
// and writes the resulting token to google_calendar.token_path.
//
// Usage:
//
//	go run ./scripts/gcal-auth [-credentials path] [-token path]
//
// Service account credentials need no token and do not use this command.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"abe-voice/config"
)

func main() {
	credsPath := "google-credentials.json"
	tokenPath := "token.json"
	if cfg, err := config.Load(); err == nil {
		if cfg.GoogleCalendar.CredentialsPath != "" {
			credsPath = cfg.GoogleCalendar.CredentialsPath
		}
		if cfg.GoogleCalendar.TokenPath != "" {
			tokenPath = cfg.GoogleCalendar.TokenPath
		}
	}

	flag.StringVar(&credsPath, "credentials", credsPath, "OAuth Desktop App credentials file")
	flag.StringVar(&tokenPath, "token", tokenPath, "where to write the issued token")
	flag.Parse()

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	oauthConfig, err := google.ConfigFromJSON(data, calendar.CalendarReadonlyScope)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, credsPath)
	}

	authURL := oauthConfig.AuthCodeURL("abe-voice", oauth2.AccessTypeOffline)
	fmt.Println("Open this URL in a browser and sign in with the account that can read the calendar:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("Paste the authorization code and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := oauthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		log.Fatalf("Failed to write %s: %v", tokenPath, err)
	}

	fmt.Printf("\nToken saved to %s. Restart the service with calendar.backend=google.\n", tokenPath)
}
