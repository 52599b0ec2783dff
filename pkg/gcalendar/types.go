package gcalendar

import (
	"context"
	"time"
)

// DateFormat is the layout of all-day event dates.
const DateFormat = "2006-01-02"

// Calendar is the subset of the Calendar API used to publish roadmap rows.
type Calendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
}

// CreateEventRequest is the input for creating a Google Calendar event.
// AllDay events use the date part of StartTime and an exclusive EndTime.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Timezone    string // e.g. "Europe/Lisbon"
	ColorID     string
	Tags        map[string]string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
