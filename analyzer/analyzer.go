// Package analyzer derives descriptive statistics from the results of a
// played game: jackpot counts, per-roll face counts, and combination and
// permutation frequency tables.
package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lougreen/dicelab/table"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_played_game.go github.com/lougreen/dicelab/analyzer PlayedGame

// PlayedGame is the capability an Analyzer requires of its game: access
// to a wide-form copy of the most recent results. *game.Game satisfies it.
type PlayedGame interface {
	Results() (*table.Table[string], error)
}

// Analyzer computes statistics over a game's current results. It holds a
// reference, not a snapshot: every method re-reads the game, so replaying
// the game is reflected in subsequent calls.
type Analyzer struct {
	game PlayedGame
}

// New creates an analyzer for a game that has already been played. The
// game's current results are read once here purely to validate that a
// play has happened; they are not retained.
func New(game PlayedGame) (*Analyzer, error) {
	if game == nil {
		return nil, ErrNilGame
	}
	if _, err := game.Results(); err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}
	return &Analyzer{game: game}, nil
}

// Jackpot counts the rolls in which every die produced the same face.
// A single-die game makes every roll a jackpot.
func (a *Analyzer) Jackpot() (int, error) {
	results, err := a.game.Results()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, row := range results.Rows() {
		jackpot := true
		for _, cell := range row[1:] {
			if cell != row[0] {
				jackpot = false
				break
			}
		}
		if jackpot {
			count++
		}
	}
	return count, nil
}

// FaceCountsPerRoll tabulates, for each roll, how many dice produced each
// face. Columns are the distinct faces observed anywhere in the results,
// sorted for determinism; row sums always equal the number of dice.
func (a *Analyzer) FaceCountsPerRoll() (*table.Table[int], error) {
	results, err := a.game.Results()
	if err != nil {
		return nil, err
	}

	rows := results.Rows()
	seen := make(map[string]struct{})
	for _, row := range rows {
		for _, cell := range row {
			seen[cell] = struct{}{}
		}
	}
	faces := make([]string, 0, len(seen))
	for face := range seen {
		faces = append(faces, face)
	}
	sort.Strings(faces)

	col := make(map[string]int, len(faces))
	for j, face := range faces {
		col[face] = j
	}

	cells := make([][]int, len(rows))
	for i, row := range rows {
		counts := make([]int, len(faces))
		for _, cell := range row {
			counts[col[cell]]++
		}
		cells[i] = counts
	}
	return table.New(results.RowKeys(), faces, cells), nil
}

// ComboCount groups rolls by the multiset of their outcomes: each roll's
// faces are sorted into a canonical key, so order across dice does not
// matter. Counts sum to the number of rolls.
func (a *Analyzer) ComboCount() (*table.Table[int], error) {
	return a.countRolls(func(row []string) string {
		sorted := append([]string(nil), row...)
		sort.Strings(sorted)
		return strings.Join(sorted, ",")
	})
}

// PermutationCount groups rolls by the exact ordered tuple of their
// outcomes, die order preserved. Counts sum to the number of rolls.
func (a *Analyzer) PermutationCount() (*table.Table[int], error) {
	return a.countRolls(func(row []string) string {
		return strings.Join(row, ",")
	})
}

// countRolls buckets rolls under keyFn and returns a one-column count
// table ordered by descending count, ties broken by key.
func (a *Analyzer) countRolls(keyFn func(row []string) string) (*table.Table[int], error) {
	results, err := a.game.Results()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, row := range results.Rows() {
		counts[keyFn(row)]++
	}

	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	cells := make([][]int, len(keys))
	for i, key := range keys {
		cells[i] = []int{counts[key]}
	}
	return table.New(keys, []string{"count"}, cells), nil
}
