package skill

import (
	"fmt"

	"abe-voice/internal/model"
)

var (
	ErrMissingDateSlot = fmt.Errorf("%w: date slot has no value", model.ErrMalformedRequest)
	ErrInvalidDateSlot = fmt.Errorf("%w: date slot is not a calendar day", model.ErrMalformedRequest)
)
