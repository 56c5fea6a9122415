package http

import (
	"context"
	"errors"

	"abe-voice/internal/model"
	"abe-voice/internal/skill"
)

// mapError turns a dispatch error into the speech the platform should read.
// The platform only accepts speech envelopes, so every error becomes one.
func (h *handler) mapError(ctx context.Context, err error) skill.Response {
	if errors.Is(err, model.ErrMalformedRequest) {
		return skill.RenderMalformedRequest()
	}
	h.l.Errorf(ctx, "skill.delivery.mapError: unexpected error: %v", err)
	return skill.RenderInternalError()
}
