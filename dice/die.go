// Package dice implements a weighted die: a fixed set of unique face
// labels with mutable non-negative weights, sampled with replacement in
// proportion to the current weights.
package dice

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/lougreen/dicelab/table"
)

// Die holds a fixed, ordered set of unique face labels and one mutable
// weight per face. Faces never change after construction.
type Die struct {
	faces   []string
	index   map[string]int
	weights []float64
	src     Source
	logger  *zap.Logger
}

// Config for a die
type Config struct {
	// Faces are the unique face labels, in order.
	Faces []string

	// Source is the randomness provider. Defaults to a time-seeded source.
	Source Source

	// Logger receives debug-level roll logs. Defaults to a no-op logger.
	Logger *zap.Logger
}

// New creates a die with the configured faces, each weighted 1.0.
func New(cfg *Config) (*Die, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if len(cfg.Faces) == 0 {
		return nil, ErrNoFaces
	}

	index := make(map[string]int, len(cfg.Faces))
	for i, face := range cfg.Faces {
		if _, ok := index[face]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFace, face)
		}
		index[face] = i
	}

	src := cfg.Source
	if src == nil {
		src = NewSource()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	weights := make([]float64, len(cfg.Faces))
	for i := range weights {
		weights[i] = 1.0
	}

	return &Die{
		faces:   append([]string(nil), cfg.Faces...),
		index:   index,
		weights: weights,
		src:     src,
		logger:  logger,
	}, nil
}

// Faces returns a copy of the face labels in construction order.
func (d *Die) Faces() []string {
	return append([]string(nil), d.faces...)
}

// ChangeWeight replaces the weight of a single face. All other faces are
// unaffected, and the die is left unchanged on any error.
func (d *Die) ChangeWeight(face string, weight float64) error {
	if _, ok := d.index[face]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFace, face)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return ErrInvalidWeight
	}
	if weight < 0 {
		return ErrNegativeWeight
	}

	d.weights[d.index[face]] = weight
	return nil
}

// Roll draws n independent weighted samples, with replacement. Each
// face's selection probability is its weight over the total weight.
// Rolling never alters the weights, and the cumulative distribution is
// rebuilt on every call so weight changes are always reflected.
func (d *Die) Roll(n int) ([]string, error) {
	if n < 1 {
		return nil, ErrInvalidRollCount
	}

	cumulative, total := d.cumulative()
	if total <= 0 {
		return nil, ErrZeroTotalWeight
	}

	outcomes := make([]string, n)
	for i := range outcomes {
		draw := d.src.Float64() * total
		// First face whose cumulative weight exceeds the draw. Zero-weight
		// faces span an empty interval and can never be selected.
		idx := sort.Search(len(cumulative), func(j int) bool {
			return draw < cumulative[j]
		})
		if idx == len(cumulative) {
			idx = len(cumulative) - 1
		}
		outcomes[i] = d.faces[idx]
	}

	d.logger.Debug("die roll",
		zap.Int("count", n),
		zap.Float64("total_weight", total),
		zap.Strings("outcomes", outcomes),
	)
	return outcomes, nil
}

// Show returns a snapshot of the die: one row per face, in construction
// order, with a single weight column. The snapshot is independent of the
// die's internal state.
func (d *Die) Show() *table.Table[float64] {
	cells := make([][]float64, len(d.faces))
	for i, w := range d.weights {
		cells[i] = []float64{w}
	}
	return table.New(d.faces, []string{"weight"}, cells)
}

// cumulative builds the running weight totals used for sampling.
func (d *Die) cumulative() ([]float64, float64) {
	cumulative := make([]float64, len(d.weights))
	total := 0.0
	for i, w := range d.weights {
		total += w
		cumulative[i] = total
	}
	return cumulative, total
}
