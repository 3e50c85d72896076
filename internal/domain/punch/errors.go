package punch

import "errors"

// Punch domain errors
var (
	ErrPunchNotFound    = errors.New("punch record not found")
	ErrInvalidTimestamp = errors.New("invalid punch timestamp")
)
