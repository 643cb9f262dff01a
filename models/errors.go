package models

import "errors"

var (
	// ErrCountMismatch is returned when a decoded sync envelope declares
	// counts that differ from the length of its data.
	ErrCountMismatch = errors.New("sync response counts do not match data")
)
