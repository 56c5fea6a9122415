package repository

import "errors"

var (
	ErrTransport = errors.New("calendar transport failure")
	ErrDecode    = errors.New("calendar decode failure")
)

// IsFetchFailure reports whether err came from talking to the calendar.
func IsFetchFailure(err error) bool {
	return errors.Is(err, ErrTransport) || errors.Is(err, ErrDecode)
}
