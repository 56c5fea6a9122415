package datemath

import "errors"

var ErrUnsupportedDate = errors.New("datemath: unsupported date value")
