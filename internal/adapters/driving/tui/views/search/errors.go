package search

import "errors"

// ErrNoCoordinator indicates that no query coordinator was provided.
var ErrNoCoordinator = errors.New("query coordinator is required")
