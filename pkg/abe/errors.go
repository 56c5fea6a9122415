package abe

import "errors"

var (
	ErrTransport       = errors.New("abe: transport error")
	ErrDecode          = errors.New("abe: decode error")
	ErrIncompleteRange = errors.New("abe: start and end must both be set or both be empty")
)
