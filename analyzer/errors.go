package analyzer

import "errors"

// Define errors
var (
	ErrNilGame = errors.New("game cannot be nil")
)
