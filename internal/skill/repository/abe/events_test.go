package abe_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"abe-voice/internal/model"
	"abe-voice/internal/skill/repository"
	abeRepo "abe-voice/internal/skill/repository/abe"
	pkgABE "abe-voice/pkg/abe"
)

type mockLogger struct {
	warnings []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnings = append(m.warnings, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

const fixtureBody = `[
	{"end":"2018-02-21 04:59:59","id":"5a760ae1e8fb6d000a5fc365","labels":["academic"],"start":"2018-02-20 05:00:00","sub_events":[],"title":"Olin Monday"},
	{"description":"No Olin Classes","end":"2018-03-24 03:59:59","id":"5a760c64e8fb6d000a5fc366","labels":["academic"],"start":"2018-03-19 04:00:00","sub_events":[],"title":"Spring Break"},
	{"title":"Expo","start":"2018-03-01 18:00:00","location":"Academic Center","labels":["featured","academic"]},
	{"title":"Broken","start":"March 1st"},
	{"start":"2018-03-01 18:00:00"},
	{"title":42,"start":"2018-03-01 18:00:00"}
]`

func newRepo(t *testing.T, body string, status int) (repository.EventRepository, *mockLogger, *string) {
	t.Helper()
	var query string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)

	zones, err := model.LoadZones("UTC", "America/New_York")
	if err != nil {
		t.Fatalf("zones: %v", err)
	}
	l := &mockLogger{}
	return abeRepo.New(pkgABE.NewClient(ts.URL, time.Second), zones, l), l, &query
}

func TestListEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("Skips malformed items and keeps order", func(t *testing.T) {
		repo, l, _ := newRepo(t, fixtureBody, http.StatusOK)

		events, err := repo.ListEvents(ctx, repository.ListEventsOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 3 {
			t.Fatalf("expected 3 events, got %d", len(events))
		}
		for i, want := range []string{"Olin Monday", "Spring Break", "Expo"} {
			if events[i].Title != want {
				t.Errorf("event %d = %q, want %q", i, events[i].Title, want)
			}
		}
		if len(l.warnings) != 3 {
			t.Errorf("expected 3 skip warnings, got %v", l.warnings)
		}
	})

	t.Run("Label filter uses partial match", func(t *testing.T) {
		repo, _, _ := newRepo(t, fixtureBody, http.StatusOK)

		events, err := repo.ListEvents(ctx, repository.ListEventsOptions{Labels: []string{"featured", "nonexistent"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 1 || events[0].Title != "Expo" || events[0].Location != "Academic Center" {
			t.Errorf("unexpected filtered events: %+v", events)
		}
	})

	t.Run("Window becomes query", func(t *testing.T) {
		repo, _, query := newRepo(t, `[]`, http.StatusOK)
		start := time.Date(2018, 2, 20, 0, 0, 0, 0, time.UTC)
		window, _ := model.NewDateWindow(start, start.AddDate(0, 0, 1))

		events, err := repo.ListEvents(ctx, repository.ListEventsOptions{Window: &window})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 0 {
			t.Errorf("expected no events, got %d", len(events))
		}
		if events == nil {
			t.Errorf("expected empty, non-nil slice")
		}
		if *query != "start=2018-02-20&end=2018-02-21" {
			t.Errorf("unexpected query %q", *query)
		}
	})

	t.Run("Decode failure", func(t *testing.T) {
		repo, _, _ := newRepo(t, `not json`, http.StatusOK)
		_, err := repo.ListEvents(ctx, repository.ListEventsOptions{})
		if !errors.Is(err, repository.ErrDecode) || errors.Is(err, repository.ErrTransport) {
			t.Fatalf("expected ErrDecode only, got %v", err)
		}
		if !repository.IsFetchFailure(err) {
			t.Errorf("expected fetch failure")
		}
	})

	t.Run("Transport failure", func(t *testing.T) {
		repo, _, _ := newRepo(t, `boom`, http.StatusBadGateway)
		_, err := repo.ListEvents(ctx, repository.ListEventsOptions{})
		if !errors.Is(err, repository.ErrTransport) {
			t.Fatalf("expected ErrTransport, got %v", err)
		}
		if !repository.IsFetchFailure(err) {
			t.Errorf("expected fetch failure")
		}
	})
}
