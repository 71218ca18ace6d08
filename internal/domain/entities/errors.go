package entities

import "errors"

// Domain errors
var (
	ErrMissingSummaryFields = errors.New("transcript and summary are required")
	ErrRecordNotFound       = errors.New("summary record not found")
)
