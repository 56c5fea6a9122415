package model

import (
	"fmt"
	"time"
)

// DateWindow bounds a fetch. Both ends are always set.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// NewDateWindow returns the window [start, end).
func NewDateWindow(start, end time.Time) (DateWindow, error) {
	if start.IsZero() || end.IsZero() {
		return DateWindow{}, fmt.Errorf("%w: both bounds are required", ErrInvalidWindow)
	}
	if end.Before(start) {
		return DateWindow{}, fmt.Errorf("%w: end %s is before start %s", ErrInvalidWindow, end, start)
	}
	return DateWindow{Start: start, End: end}, nil
}

func (w DateWindow) String() string {
	return fmt.Sprintf("[%s, %s)", w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
}
