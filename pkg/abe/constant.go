package abe

import "time"

const (
	DefaultBaseURL = "https://abe-dev.herokuapp.com"
	DefaultTimeout = 5 * time.Second

	eventsPath      = "/events/"
	queryDateFormat = "2006-01-02"

	// maxErrorBody caps how much of a failing response is echoed into the error.
	maxErrorBody = 512
)
