package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	tokenFileName     = "token.json"
	primaryCalendarID = "primary"
	// All-day roadmap spans should not show the team as busy.
	transparencyFree = "transparent"
)

// Client publishes roadmap rows through the Google Calendar API.
type Client struct {
	service *calendar.Service
}

var _ Calendar = (*Client)(nil)

// NewClientFromCredentialsFile creates a Calendar client from a credentials JSON file path.
// Desktop OAuth credentials expect token.json next to the credentials file.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, TokenPath(credentialsPath))
}

// NewClientFromCredentialsJSON accepts Service Account JSON, or Desktop OAuth credentials with
// a token previously saved at tokenPath by the calendar-auth command.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	if jwt, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope); err == nil {
		return newClient(ctx, option.WithTokenSource(jwt.TokenSource(ctx)))
	}

	oauthCfg, err := OAuthConfig(credentialsJSON)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}
	tok, err := LoadToken(tokenPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("no OAuth token at %s: run `roadmap calendar-auth` or use a Service Account", tokenPath)
	}
	if err != nil {
		return nil, err
	}
	return newClient(ctx, option.WithTokenSource(oauthCfg.TokenSource(ctx, tok)))
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return newClient(ctx, option.WithHTTPClient(httpClient))
}

func newClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent inserts one event. An empty CalendarID targets the primary calendar.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		ColorId:     req.ColorID,
		Start:       eventDateTime(req.StartTime, req.AllDay, req.Timezone),
		End:         eventDateTime(req.EndTime, req.AllDay, req.Timezone),
	}
	if req.AllDay {
		event.Transparency = transparencyFree
	}
	if len(req.Tags) > 0 {
		event.ExtendedProperties = &calendar.EventExtendedProperties{Private: req.Tags}
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = primaryCalendarID
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

func eventDateTime(t time.Time, allDay bool, tz string) *calendar.EventDateTime {
	if allDay {
		return &calendar.EventDateTime{Date: t.Format(DateFormat)}
	}
	return &calendar.EventDateTime{DateTime: t.Format(time.RFC3339), TimeZone: tz}
}
