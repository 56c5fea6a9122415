package model

import "fmt"

// RequestTypeLaunch is sent when the skill is opened without a command.
const RequestTypeLaunch = "LaunchRequest"

// Envelope is the subset of the voice platform request this service reads.
type Envelope struct {
	Session *struct {
		Application *struct {
			ApplicationID string `json:"applicationId"`
		} `json:"application"`
	} `json:"session,omitempty"`
	Request *EnvelopeRequest `json:"request"`
}

type EnvelopeRequest struct {
	Type   *string         `json:"type"`
	Intent *EnvelopeIntent `json:"intent,omitempty"`
}

type EnvelopeIntent struct {
	Name  *string                 `json:"name"`
	Slots map[string]EnvelopeSlot `json:"slots,omitempty"`
}

type EnvelopeSlot struct {
	Name               string  `json:"name"`
	Value              *string `json:"value,omitempty"`
	ConfirmationStatus *string `json:"confirmationStatus,omitempty"`
}

// ApplicationID returns the skill id the request was addressed to, if any.
func (e Envelope) ApplicationID() string {
	if e.Session == nil || e.Session.Application == nil {
		return ""
	}
	return e.Session.Application.ApplicationID
}

// Slot is a named intent parameter. Value is nil when the platform could not resolve it.
type Slot struct {
	Name               string
	Value              *string
	ConfirmationStatus *string
}

// IntentRequest is a parsed platform request. Kind and Slots are only set when Launch is false.
type IntentRequest struct {
	Launch bool
	Kind   string
	Slots  map[string]Slot
}

// Slot looks up a slot by name.
func (r IntentRequest) Slot(name string) (Slot, bool) {
	if r.Launch || r.Slots == nil {
		return Slot{}, false
	}
	s, ok := r.Slots[name]
	return s, ok
}

// ParseIntentRequest converts the envelope into an IntentRequest.
func ParseIntentRequest(env Envelope) (IntentRequest, error) {
	if env.Request == nil {
		return IntentRequest{}, fmt.Errorf("%w: request is missing", ErrMalformedRequest)
	}
	if env.Request.Type == nil {
		return IntentRequest{}, fmt.Errorf("%w: request.type is missing", ErrMalformedRequest)
	}

	if *env.Request.Type == RequestTypeLaunch {
		return IntentRequest{Launch: true}, nil
	}

	intent := env.Request.Intent
	if intent == nil {
		return IntentRequest{}, fmt.Errorf("%w: request.intent is missing for type %q", ErrMalformedRequest, *env.Request.Type)
	}
	if intent.Name == nil {
		return IntentRequest{}, fmt.Errorf("%w: request.intent.name is missing", ErrMalformedRequest)
	}

	slots := make(map[string]Slot, len(intent.Slots))
	for key, s := range intent.Slots {
		slots[key] = Slot{
			Name:               s.Name,
			Value:              s.Value,
			ConfirmationStatus: s.ConfirmationStatus,
		}
	}

	return IntentRequest{
		Kind:  *intent.Name,
		Slots: slots,
	}, nil
}
