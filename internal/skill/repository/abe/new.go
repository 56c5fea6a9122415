package abe

import (
	"context"
	"encoding/json"

	"abe-voice/internal/model"
	"abe-voice/internal/skill/repository"
	pkgABE "abe-voice/pkg/abe"
	pkgLog "abe-voice/pkg/log"
)

// Client is the subset of pkg/abe the repository needs.
type Client interface {
	ListEvents(ctx context.Context, req pkgABE.ListEventsRequest) ([]json.RawMessage, error)
}

type implRepository struct {
	client Client
	zones  model.Zones
	l      pkgLog.Logger
}

// New creates an ABE-backed event repository.
func New(client Client, zones model.Zones, l pkgLog.Logger) repository.EventRepository {
	return &implRepository{
		client: client,
		zones:  zones,
		l:      l,
	}
}
