package repository

import "errors"

// Sentinel kinds for lead store errors.
var (
	ErrNotFound     = errors.New("lead not found")
	ErrInvalidLimit = errors.New("invalid leads limit")
)
