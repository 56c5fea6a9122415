package gcal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"abe-voice/internal/model"
	"abe-voice/internal/skill/repository"
	"abe-voice/pkg/gcalendar"
)

func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	req := gcalendar.ListEventsRequest{CalendarID: r.calendarID}
	if opt.Window != nil {
		req.TimeMin = opt.Window.Start
		req.TimeMax = opt.Window.End
		r.l.Infof(ctx, "gcal repository: getting events in %s", opt.Window)
	} else {
		r.l.Infof(ctx, "gcal repository: getting all events")
	}

	res, err := r.client.ListEvents(ctx, req)
	if err != nil {
		r.l.Errorf(ctx, "gcal repository: list events failed: %v", err)
		if errors.Is(err, gcalendar.ErrAPI) {
			return nil, fmt.Errorf("%w: %w", repository.ErrTransport, err)
		}
		return nil, err
	}

	for _, bad := range res.Invalid {
		r.l.Warnf(ctx, "gcal repository: skipping event %s: %v", bad.ID, bad.Err)
	}

	events := make([]model.Event, 0, len(res.Events))
	for _, item := range res.Events {
		if strings.TrimSpace(item.Summary) == "" {
			r.l.Warnf(ctx, "gcal repository: skipping event %s: title is missing", item.ID)
			continue // partial success: skip malformed items
		}
		ev := r.toEvent(item)
		if len(opt.Labels) > 0 && !ev.HasLabels(opt.Labels, false) {
			continue
		}
		events = append(events, ev)
	}

	r.l.Infof(ctx, "gcal repository: found %d events (%d received)", len(events), len(res.Events)+len(res.Invalid))
	return events, nil
}

func (r *implRepository) toEvent(item gcalendar.Event) model.Event {
	ev := model.Event{
		Title:    item.Summary,
		Start:    r.inDisplay(item.Start, item.AllDay),
		Location: item.Location,
		AllDay:   item.AllDay,
		Labels:   item.Labels,
	}
	if !item.End.IsZero() {
		end := r.inDisplay(item.End, item.AllDay)
		ev.End = &end
	}
	return ev
}

// inDisplay moves t to the display zone. All-day dates keep their calendar day.
func (r *implRepository) inDisplay(t time.Time, allDay bool) time.Time {
	if allDay {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.display)
	}
	return t.In(r.display)
}
