package dice

import "errors"

// Define errors
var (
	ErrNilConfig        = errors.New("config cannot be nil")
	ErrNoFaces          = errors.New("die requires at least one face")
	ErrDuplicateFace    = errors.New("face values must be unique")
	ErrUnknownFace      = errors.New("face is not on this die")
	ErrInvalidWeight    = errors.New("weight must be a finite number")
	ErrNegativeWeight   = errors.New("weight cannot be negative")
	ErrInvalidRollCount = errors.New("roll count must be a positive integer")
	ErrZeroTotalWeight  = errors.New("total weight is zero, no valid distribution")
)
