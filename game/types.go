package game

import (
	"go.uber.org/zap"

	"github.com/lougreen/dicelab/internal/common/clock"
	"github.com/lougreen/dicelab/internal/common/uuid"
)

// Form selects the shape of the result table returned by Show.
type Form string

const (
	// FormWide is one row per roll, one column per die.
	FormWide Form = "wide"

	// FormNarrow is one row per (roll, die) pair with a single outcome column.
	FormNarrow Form = "narrow"
)

// Config for a game
type Config struct {
	// Dice are rolled together on every play, in order. Die 0 is always
	// column 0 of the results. Face compatibility across dice is the
	// caller's responsibility and is not validated here.
	Dice []Rollable

	// Logger receives debug-level play logs. Defaults to a no-op logger.
	Logger *zap.Logger

	// Clock stamps game creation and plays. Defaults to the system clock.
	Clock clock.Clock

	// UUIDGenerator assigns the game ID. Defaults to google/uuid.
	UUIDGenerator uuid.Generator
}
