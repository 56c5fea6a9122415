package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	defaultCalendarID = "primary"
	defaultPageSize   = 250
	allDayLayout      = "2006-01-02"
)

var (
	ErrIncompleteRange = errors.New("gcalendar: time_min and time_max must both be set or both be empty")
	ErrAPI             = errors.New("gcalendar: calendar api request failed")
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials JSON file.
// tokenPath is only read for OAuth desktop credentials.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON creates a read-only Calendar client from raw credentials bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	// Service account
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarReadonlyScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	// OAuth2 installed app with a previously issued token
	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil || oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarReadonlyScope},
		Endpoint:     google.Endpoint,
	}

	if tokenPath == "" {
		tokenPath = "token.json"
	}
	tokenData, tokenErr := os.ReadFile(tokenPath)
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token found at %s: use a service account instead", tokenPath)
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tokenPath, jsonErr)
	}

	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListEvents returns single (expanded) events ordered by start time, following every result page.
// Items that cannot be converted are reported in Invalid instead of failing the listing.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) (ListEventsResult, error) {
	if req.TimeMin.IsZero() != req.TimeMax.IsZero() {
		return ListEventsResult{}, ErrIncompleteRange
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}
	pageSize := req.MaxResults
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	call := c.service.Events.List(calendarID).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(pageSize)
	if !req.TimeMin.IsZero() {
		call = call.TimeMin(req.TimeMin.Format(time.RFC3339)).TimeMax(req.TimeMax.Format(time.RFC3339))
	}

	result := ListEventsResult{Events: []Event{}}
	err := call.Pages(ctx, func(page *calendar.Events) error {
		for _, item := range page.Items {
			ev, err := toEvent(item)
			if err != nil {
				result.Invalid = append(result.Invalid, InvalidEvent{ID: item.Id, Err: err})
				continue
			}
			result.Events = append(result.Events, ev)
		}
		return nil
	})
	if err != nil {
		return ListEventsResult{}, fmt.Errorf("%w: %w", ErrAPI, err)
	}
	return result, nil
}

func toEvent(item *calendar.Event) (Event, error) {
	ev := Event{
		ID:       item.Id,
		Summary:  item.Summary,
		Location: item.Location,
	}

	start, allDay, err := parseEventDateTime(item.Start)
	if err != nil {
		return Event{}, fmt.Errorf("start: %w", err)
	}
	ev.Start = start
	ev.AllDay = allDay

	if item.End != nil {
		end, _, err := parseEventDateTime(item.End)
		if err != nil {
			return Event{}, fmt.Errorf("end: %w", err)
		}
		ev.End = end
	}

	if item.ExtendedProperties != nil {
		ev.Labels = splitLabels(item.ExtendedProperties.Shared[LabelsProperty])
	}
	return ev, nil
}

func parseEventDateTime(dt *calendar.EventDateTime) (time.Time, bool, error) {
	if dt == nil {
		return time.Time{}, false, errors.New("missing date")
	}
	if dt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, dt.DateTime)
		return t, false, err
	}
	if dt.Date != "" {
		loc := time.UTC
		if dt.TimeZone != "" {
			if l, err := time.LoadLocation(dt.TimeZone); err == nil {
				loc = l
			}
		}
		t, err := time.ParseInLocation(allDayLayout, dt.Date, loc)
		return t, true, err
	}
	return time.Time{}, false, errors.New("missing date")
}

func splitLabels(raw string) []string {
	if raw == "" {
		return nil
	}
	var labels []string
	for _, l := range strings.Split(raw, ",") {
		if l = strings.TrimSpace(l); l != "" {
			labels = append(labels, l)
		}
	}
	return labels
}
