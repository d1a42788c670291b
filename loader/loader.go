// Package loader builds dice and games from declarative YAML experiment
// definitions, so a weighted-dice experiment can be described in a file
// instead of assembled by hand.
package loader

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/lougreen/dicelab/dice"
	"github.com/lougreen/dicelab/game"
)

// BuildConfig carries optional infrastructure for built dice and games.
// A nil BuildConfig, or nil fields, fall back to the same defaults as
// constructing dice and games directly.
type BuildConfig struct {
	// Source seeds every built die. Share a seeded source here for
	// reproducible experiments.
	Source dice.Source

	// Logger receives the debug-level roll and play logs.
	Logger *zap.Logger
}

// Experiment holds the live values built from a Definition.
type Experiment struct {
	// Dice maps definition names to built dice. Games reference these by
	// name; a name listed twice in the game yields two rolls of the same
	// die per roll index.
	Dice map[string]*dice.Die

	// Game rolls the referenced dice together.
	Game *game.Game

	// Rolls is the declared number of rolls per play.
	Rolls int
}

// Run plays the experiment's game for the declared number of rolls.
func (e *Experiment) Run() error {
	return e.Game.Play(e.Rolls)
}

// Parse decodes and validates a YAML experiment definition.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}
	if err := def.validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// validate checks referential integrity before anything is built.
func (d *Definition) validate() error {
	if len(d.Dice) == 0 {
		return ErrNoDiceDefined
	}

	names := make(map[string]struct{}, len(d.Dice))
	for _, die := range d.Dice {
		if die.Name == "" {
			return ErrUnnamedDie
		}
		if _, ok := names[die.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateDieName, die.Name)
		}
		names[die.Name] = struct{}{}
		if len(die.Faces) == 0 {
			return fmt.Errorf("%w: %q", ErrNoFacesDefined, die.Name)
		}
	}

	if len(d.Game.Dice) == 0 {
		return ErrNoGameDice
	}
	for _, name := range d.Game.Dice {
		if _, ok := names[name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownDieName, name)
		}
	}
	if d.Game.Rolls < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidRolls, d.Game.Rolls)
	}
	return nil
}

// Build constructs the dice and game a definition declares. cfg may be
// nil. Weight overrides are applied through ChangeWeight, so they are
// subject to the same validation as direct calls.
func (d *Definition) Build(cfg *BuildConfig) (*Experiment, error) {
	var src dice.Source
	var logger *zap.Logger
	if cfg != nil {
		src = cfg.Source
		logger = cfg.Logger
	}

	built := make(map[string]*dice.Die, len(d.Dice))
	for _, dieDef := range d.Dice {
		faces := make([]string, len(dieDef.Faces))
		for i, face := range dieDef.Faces {
			faces[i] = string(face)
		}

		die, err := dice.New(&dice.Config{
			Faces:  faces,
			Source: src,
			Logger: logger,
		})
		if err != nil {
			return nil, fmt.Errorf("build die %q: %w", dieDef.Name, err)
		}
		for face, weight := range dieDef.Weights {
			if err := die.ChangeWeight(face, weight); err != nil {
				return nil, fmt.Errorf("build die %q: %w", dieDef.Name, err)
			}
		}
		built[dieDef.Name] = die
	}

	rollables := make([]game.Rollable, len(d.Game.Dice))
	for i, name := range d.Game.Dice {
		rollables[i] = built[name]
	}

	g, err := game.New(&game.Config{
		Dice:   rollables,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build game: %w", err)
	}

	return &Experiment{
		Dice:  built,
		Game:  g,
		Rolls: d.Game.Rolls,
	}, nil
}
