package tui

import "errors"

// ErrMissingCoordinator is returned when the query coordinator is not provided.
var ErrMissingCoordinator = errors.New("tui: query coordinator is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
