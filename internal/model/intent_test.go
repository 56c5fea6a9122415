package model_test

import (
	"encoding/json"
	"errors"
	"testing"

	"abe-voice/internal/model"
)

func decodeEnvelope(t *testing.T, raw string) model.Envelope {
	t.Helper()
	var env model.Envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	return env
}

func TestParseIntentRequest(t *testing.T) {
	t.Run("Launch", func(t *testing.T) {
		env := decodeEnvelope(t, `{"session":{"application":{"applicationId":"amzn1.ask.skill.1"}},"request":{"type":"LaunchRequest"}}`)
		req, err := model.ParseIntentRequest(env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !req.Launch || req.Kind != "" || req.Slots != nil {
			t.Errorf("unexpected launch request: %+v", req)
		}
		if _, ok := req.Slot("date"); ok {
			t.Errorf("launch request must not expose slots")
		}
		if env.ApplicationID() != "amzn1.ask.skill.1" {
			t.Errorf("unexpected application id %q", env.ApplicationID())
		}
	})

	t.Run("Intent with slots", func(t *testing.T) {
		env := decodeEnvelope(t, `{"request":{"type":"IntentRequest","intent":{"name":"WhatsHappeningOn","slots":{
			"date":{"name":"date","value":"2018-02-20","confirmationStatus":"NONE"},
			"time":{"name":"time"}}}}}`)
		req, err := model.ParseIntentRequest(env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Launch || req.Kind != "WhatsHappeningOn" {
			t.Fatalf("unexpected request: %+v", req)
		}

		date, ok := req.Slot("date")
		if !ok || date.Value == nil || *date.Value != "2018-02-20" {
			t.Errorf("unexpected date slot: %+v", date)
		}
		if date.ConfirmationStatus == nil || *date.ConfirmationStatus != "NONE" {
			t.Errorf("unexpected confirmation status: %v", date.ConfirmationStatus)
		}

		tm, ok := req.Slot("time")
		if !ok || tm.Value != nil {
			t.Errorf("expected unresolved time slot, got %+v", tm)
		}
	})

	t.Run("Intent without slots", func(t *testing.T) {
		env := decodeEnvelope(t, `{"request":{"type":"IntentRequest","intent":{"name":"WhatsHappeningNext"}}}`)
		req, err := model.ParseIntentRequest(env)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Slots == nil || len(req.Slots) != 0 {
			t.Errorf("expected empty slot map, got %v", req.Slots)
		}
	})

	malformed := []struct {
		name string
		raw  string
	}{
		{name: "Empty object", raw: `{}`},
		{name: "Missing type", raw: `{"request":{}}`},
		{name: "Missing intent", raw: `{"request":{"type":"IntentRequest"}}`},
		{name: "Session ended", raw: `{"request":{"type":"SessionEndedRequest"}}`},
		{name: "Missing intent name", raw: `{"request":{"type":"IntentRequest","intent":{}}}`},
	}
	for _, tt := range malformed {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.ParseIntentRequest(decodeEnvelope(t, tt.raw))
			if !errors.Is(err, model.ErrMalformedRequest) {
				t.Fatalf("expected ErrMalformedRequest, got %v", err)
			}
		})
	}
}
