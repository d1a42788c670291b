package game

import "errors"

// Define errors
var (
	ErrNilConfig        = errors.New("config cannot be nil")
	ErrNoDice           = errors.New("game requires at least one die")
	ErrNilDie           = errors.New("dice entries cannot be nil")
	ErrInvalidRollCount = errors.New("roll count must be a positive integer")
	ErrShortRoll        = errors.New("die returned the wrong number of outcomes")
	ErrInvalidForm      = errors.New("form must be wide or narrow")
	ErrNotPlayed        = errors.New("no results to show, play the game first")
)
