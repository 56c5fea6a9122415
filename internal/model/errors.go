package model

import "errors"

var (
	ErrParseEvent       = errors.New("event parse error")
	ErrMalformedRequest = errors.New("malformed request")
	ErrInvalidWindow    = errors.New("invalid date window")
)
