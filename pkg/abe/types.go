package abe

import "time"

// ListEventsRequest bounds an event listing. Start and End are either both set or both zero.
type ListEventsRequest struct {
	Start time.Time
	End   time.Time
}

func (r ListEventsRequest) hasRange() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}
