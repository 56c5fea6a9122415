package abe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"abe-voice/internal/model"
	"abe-voice/internal/skill/repository"
	pkgABE "abe-voice/pkg/abe"
)

func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	req := pkgABE.ListEventsRequest{}
	if opt.Window != nil {
		req.Start = opt.Window.Start
		req.End = opt.Window.End
		r.l.Infof(ctx, "abe repository: getting events in %s", opt.Window)
	} else {
		r.l.Infof(ctx, "abe repository: getting all events")
	}

	raw, err := r.client.ListEvents(ctx, req)
	if err != nil {
		r.l.Errorf(ctx, "abe repository: list events failed: %v", err)
		switch {
		case errors.Is(err, pkgABE.ErrDecode):
			return nil, fmt.Errorf("%w: %w", repository.ErrDecode, err)
		case errors.Is(err, pkgABE.ErrTransport):
			return nil, fmt.Errorf("%w: %w", repository.ErrTransport, err)
		default:
			return nil, err
		}
	}

	events := make([]model.Event, 0, len(raw))
	for i, item := range raw {
		ev, err := r.parseItem(item)
		if err != nil {
			r.l.Warnf(ctx, "abe repository: skipping event %d: %v", i, err)
			continue // partial success: skip malformed items
		}
		if len(opt.Labels) > 0 && !ev.HasLabels(opt.Labels, false) {
			continue
		}
		events = append(events, ev)
	}

	r.l.Infof(ctx, "abe repository: found %d events (%d received)", len(events), len(raw))
	return events, nil
}

// parseItem decodes one array element and validates it as an event.
func (r *implRepository) parseItem(raw json.RawMessage) (model.Event, error) {
	var item model.EventItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return model.Event{}, fmt.Errorf("%w: %v", model.ErrParseEvent, err)
	}
	return model.ParseEvent(item, r.zones)
}
