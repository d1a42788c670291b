// Package game orchestrates synchronized rolls across a fixed set of dice
// and records the outcomes of the most recent play as a roll-by-die table.
package game

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/lougreen/dicelab/internal/common/clock"
	"github.com/lougreen/dicelab/internal/common/uuid"
	"github.com/lougreen/dicelab/table"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_rollable.go github.com/lougreen/dicelab/game Rollable

// Rollable is the capability a Game requires of its dice. *dice.Die
// satisfies it.
type Rollable interface {
	// Roll draws n independent weighted samples and returns their face
	// labels in draw order.
	Roll(n int) ([]string, error)
}

// Game holds an ordered, fixed collection of dice and the results of the
// most recent play. Each play fully replaces the previous results.
type Game struct {
	id           string
	dice         []Rollable
	clock        clock.Clock
	logger       *zap.Logger
	createdAt    time.Time
	lastPlayedAt time.Time
	lastPlay     *table.Table[string]
}

// New creates a game over the configured dice.
func New(cfg *Config) (*Game, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if len(cfg.Dice) == 0 {
		return nil, ErrNoDice
	}
	for i, die := range cfg.Dice {
		if die == nil {
			return nil, fmt.Errorf("%w: position %d", ErrNilDie, i)
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.NewSystem()
	}

	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.NewGoogle()
	}

	return &Game{
		id:        gen.New(),
		dice:      append([]Rollable(nil), cfg.Dice...),
		clock:     clk,
		logger:    logger,
		createdAt: clk.Now(),
	}, nil
}

// ID returns the game's unique identifier.
func (g *Game) ID() string {
	return g.id
}

// CreatedAt returns when the game was constructed.
func (g *Game) CreatedAt() time.Time {
	return g.createdAt
}

// LastPlayedAt returns when the game was last played, or the zero time if
// it has never been played.
func (g *Game) LastPlayedAt() time.Time {
	return g.lastPlayedAt
}

// NumDice returns the number of dice in the game.
func (g *Game) NumDice() int {
	return len(g.dice)
}

// Play rolls every die once per roll index, for n rolls, and stores the
// outcomes as a table of n rows by NumDice columns. Draws are independent
// per die per roll. Any error leaves the previous results intact.
func (g *Game) Play(n int) error {
	if n < 1 {
		return ErrInvalidRollCount
	}

	rows := make([][]string, n)
	for r := range rows {
		row := make([]string, len(g.dice))
		for d, die := range g.dice {
			outcomes, err := die.Roll(1)
			if err != nil {
				return fmt.Errorf("die %d on roll %d: %w", d, r, err)
			}
			if len(outcomes) != 1 {
				return fmt.Errorf("die %d on roll %d: %w", d, r, ErrShortRoll)
			}
			row[d] = outcomes[0]
		}
		rows[r] = row
	}

	g.lastPlay = table.New(rollKeys(n), dieKeys(len(g.dice)), rows)
	g.lastPlayedAt = g.clock.Now()

	g.logger.Debug("game played",
		zap.String("game_id", g.id),
		zap.Int("rolls", n),
		zap.Int("dice", len(g.dice)),
	)
	return nil
}

// Show returns a copy of the most recent results in the requested form.
// The returned table is independent of the stored results.
func (g *Game) Show(form Form) (*table.Table[string], error) {
	switch form {
	case FormWide, FormNarrow:
	default:
		return nil, fmt.Errorf("%w: got %q", ErrInvalidForm, string(form))
	}
	if g.lastPlay == nil {
		return nil, ErrNotPlayed
	}
	if form == FormWide {
		return g.lastPlay.Clone(), nil
	}
	return narrow(g.lastPlay), nil
}

// Results returns a wide-form copy of the most recent results. It is the
// accessor the analyzer capability reads, so replaying the game is
// reflected in any analyzer that holds this game.
func (g *Game) Results() (*table.Table[string], error) {
	return g.Show(FormWide)
}

// narrow reshapes a wide table into one row per (roll, die) pair, keyed
// "<roll>:<die>", with a single outcome column. Roll-major order.
func narrow(wide *table.Table[string]) *table.Table[string] {
	rollIDs := wide.RowKeys()
	dieIDs := wide.ColumnKeys()

	keys := make([]string, 0, len(rollIDs)*len(dieIDs))
	cells := make([][]string, 0, len(rollIDs)*len(dieIDs))
	for r, rollID := range rollIDs {
		for d, dieID := range dieIDs {
			keys = append(keys, rollID+":"+dieID)
			cells = append(cells, []string{wide.At(r, d)})
		}
	}
	return table.New(keys, []string{"outcome"}, cells)
}

func rollKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}
	return keys
}

func dieKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}
	return keys
}
