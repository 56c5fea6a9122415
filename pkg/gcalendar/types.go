package gcalendar

import "time"

// LabelsProperty is the shared extended property holding comma-separated event labels.
const LabelsProperty = "labels"

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	Location string
	Start    time.Time
	End      time.Time
	AllDay   bool
	Labels   []string
}

// ListEventsRequest is the input for listing Google Calendar events.
// TimeMin and TimeMax are either both set or both zero.
// MaxResults is the page size; every page is fetched.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// InvalidEvent is an item the API returned that could not be converted.
type InvalidEvent struct {
	ID  string
	Err error
}

type ListEventsResult struct {
	Events  []Event
	Invalid []InvalidEvent
}
