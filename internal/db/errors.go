package db

import "errors"

// Domain-level database error sentinels.
var (
	// Herb errors
	ErrHerbNotFound = errors.New("herb not found")
	ErrInvalidHerb  = errors.New("herb name is required")
)
