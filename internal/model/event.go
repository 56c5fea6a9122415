package model

import (
	"fmt"
	"slices"
	"time"
)

// WireTimeFormat is the timestamp layout ABE uses for start and end.
const WireTimeFormat = "2006-01-02 15:04:05"

const (
	speechAllDayFormat = "All day Monday"
	speechTimedFormat  = "On Monday at 03:04 PM"
)

// EventItem is one event as served by ABE.
type EventItem struct {
	Title    *string  `json:"title"`
	Start    *string  `json:"start"`
	End      *string  `json:"end"`
	Location *string  `json:"location"`
	AllDay   *bool    `json:"allDay"`
	Labels   []string `json:"labels"`
}

// Event is a calendar event with its times converted to the display zone.
type Event struct {
	Title    string
	Start    time.Time
	End      *time.Time
	Location string
	AllDay   bool
	Labels   []string
}

// ParseEvent validates item and converts its naive timestamps from zones.Source to zones.Display.
func ParseEvent(item EventItem, zones Zones) (Event, error) {
	if item.Title == nil {
		return Event{}, fmt.Errorf("%w: title is missing", ErrParseEvent)
	}
	if item.Start == nil {
		return Event{}, fmt.Errorf("%w: start is missing", ErrParseEvent)
	}

	start, err := parseWireTime(*item.Start, zones)
	if err != nil {
		return Event{}, fmt.Errorf("%w: start: %v", ErrParseEvent, err)
	}

	ev := Event{
		Title: *item.Title,
		Start: start,
	}

	if item.End != nil {
		end, err := parseWireTime(*item.End, zones)
		if err != nil {
			return Event{}, fmt.Errorf("%w: end: %v", ErrParseEvent, err)
		}
		ev.End = &end
	}
	if item.Location != nil {
		ev.Location = *item.Location
	}
	if item.AllDay != nil {
		ev.AllDay = *item.AllDay
	}
	if len(item.Labels) > 0 {
		ev.Labels = slices.Clone(item.Labels)
	}

	return ev, nil
}

// parseWireTime reads s as a wall clock in the source zone, then moves it to the display zone.
func parseWireTime(s string, zones Zones) (time.Time, error) {
	// time.Parse accepts fractional seconds the layout does not name.
	if len(s) != len(WireTimeFormat) {
		return time.Time{}, fmt.Errorf("%q does not match %q", s, WireTimeFormat)
	}
	t, err := time.ParseInLocation(WireTimeFormat, s, zones.source())
	if err != nil {
		return time.Time{}, err
	}
	return t.In(zones.display()), nil
}

// SpeechStart renders the start the way it is read out.
func (e Event) SpeechStart() string {
	if e.AllDay {
		return e.Start.Format(speechAllDayFormat)
	}
	return e.Start.Format(speechTimedFormat)
}

// HasLabels reports whether the event carries any (or, with exactMatch, all) of targets.
// An empty target set matches every event.
func (e Event) HasLabels(targets []string, exactMatch bool) bool {
	if len(targets) == 0 {
		return true
	}

	for _, target := range targets {
		found := slices.Contains(e.Labels, target)
		switch {
		case found && !exactMatch:
			return true
		case !found && exactMatch:
			return false
		}
	}

	return exactMatch
}
