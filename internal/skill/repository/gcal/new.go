package gcal

import (
	"context"
	"time"

	"abe-voice/internal/model"
	"abe-voice/internal/skill/repository"
	"abe-voice/pkg/gcalendar"
	pkgLog "abe-voice/pkg/log"
)

// Client is the subset of pkg/gcalendar the repository needs.
type Client interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) (gcalendar.ListEventsResult, error)
}

type implRepository struct {
	client     Client
	calendarID string
	display    *time.Location
	l          pkgLog.Logger
}

// New creates a Google Calendar backed event repository.
func New(client Client, calendarID string, zones model.Zones, l pkgLog.Logger) repository.EventRepository {
	display := zones.Display
	if display == nil {
		display = time.UTC
	}
	return &implRepository{
		client:     client,
		calendarID: calendarID,
		display:    display,
		l:          l,
	}
}
