package repository

import (
	"context"

	"abe-voice/internal/model"
)

// EventRepository reads events from the remote calendar.
type EventRepository interface {
	// ListEvents returns the events inside opt.Window (all events when nil), in server order.
	// Failures wrap ErrTransport or ErrDecode; an empty calendar is not an error.
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, error)
}
