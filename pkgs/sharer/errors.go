package sharer

import "errors"

// ErrInvalidConfiguration is returned when a sharer is created without the
// options it needs to work (provider and url).
var ErrInvalidConfiguration = errors.New("url and provider are required options")
