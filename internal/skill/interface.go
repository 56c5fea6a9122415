package skill

import "context"

type UseCase interface {
	// Dispatch routes a platform request to its handler and renders the spoken answer.
	// Fetch failures are rendered, not returned. Malformed requests return an error wrapping
	// model.ErrMalformedRequest; anything else returned is an internal error.
	Dispatch(ctx context.Context, input DispatchInput) (DispatchOutput, error)
}
