// SPDX-License-Identifier: MIT
// Package: complabel/grid
//
// generate.go: random image generation with an injectable RNG.
//
// Determinism:
//   • WithSeed / WithRand fix the source; identical seeds give identical grids.
//   • Without either option the source is seeded from the wall clock.
//   • Cells are drawn in row-major order, one draw per interior cell.

package grid

import (
	"fmt"
	"math/rand"
	"time"
)

// densityScale is the resolution of the per-cell draw: density is truncated
// to whole percent and compared against a uniform value in [1,densityScale].
const densityScale = 100

// GenOption customizes Generate.
type GenOption func(*genConfig)

type genConfig struct {
	rng *rand.Rand
}

// WithSeed seeds a fresh source so Generate is reproducible.
func WithSeed(seed int64) GenOption {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the random source. Panics on nil.
func WithRand(r *rand.Rand) GenOption {
	if r == nil {
		panic("grid: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// Generate returns a dim×dim grid whose interior cells are foreground with
// probability density. Returns ErrInvalidDimension or ErrInvalidDensity.
// Complexity: O(dim²).
func Generate(dim int, density float64, opts ...GenOption) (*Grid, error) {
	if dim < 0 {
		return nil, fmt.Errorf("Generate(dim=%d): %w", dim, ErrInvalidDimension)
	}
	if density < 0 || density >= 1 {
		return nil, fmt.Errorf("Generate(density=%g): %w", density, ErrInvalidDensity)
	}

	cfg := genConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	threshold := int(density * densityScale)
	g := newGrid(dim)
	for r := 1; r <= dim; r++ {
		for c := 1; c <= dim; c++ {
			if 1+cfg.rng.Intn(densityScale) <= threshold {
				g.cells[r*g.stride+c].state = Unvisited
			}
		}
	}

	return g, nil
}
