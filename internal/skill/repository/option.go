package repository

import "abe-voice/internal/model"

// ListEventsOptions holds the parameters for listing events.
type ListEventsOptions struct {
	Window *model.DateWindow // nil fetches without a date range
	Labels []string          // keep events carrying any of these; empty keeps all
}
