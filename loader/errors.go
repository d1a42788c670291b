package loader

import "errors"

// Define errors
var (
	ErrNoDiceDefined    = errors.New("definition must declare at least one die")
	ErrUnnamedDie       = errors.New("every die needs a name")
	ErrDuplicateDieName = errors.New("die names must be unique")
	ErrNoFacesDefined   = errors.New("every die needs at least one face")
	ErrNoGameDice       = errors.New("game must reference at least one die")
	ErrUnknownDieName   = errors.New("game references an undefined die")
	ErrInvalidRolls     = errors.New("game rolls must be a positive integer")
)
