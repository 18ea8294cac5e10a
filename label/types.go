package label

import (
	"context"
	"errors"

	"github.com/katalvlaran/complabel/grid"
)

var (
	// ErrGridNil is returned when a nil *grid.Grid is passed to a labeler.
	ErrGridNil = errors.New("label: grid is nil")

	// ErrCanceled wraps the context error when a run is aborted.
	ErrCanceled = errors.New("label: run canceled")
)

// FirstID is the id given to the first component of every run.
const FirstID = grid.FirstComponentID

// FirstOrder is the discovery order given to the first seed of every run.
const FirstOrder = 1

// Labeler assigns component ids and discovery orders to every foreground
// cell of g, mutating g in place.
type Labeler interface {
	Label(g *grid.Grid) (Result, error)
}

// Result summarizes one labeling run.
type Result struct {
	// Components is the number of components found.
	Components int
	// Foreground is the number of cells labeled.
	Foreground int
	// NextID is the id counter after the run: FirstID + Components.
	NextID uint32
	// NextOrder is the order counter after the run: FirstOrder + Foreground.
	NextOrder int
	// MaxFrontier is the peak occupancy of the labeler's work list.
	MaxFrontier int
}

// Option configures a labeler.
type Option func(*Options)

// Options holds hooks and cancellation shared by both labelers.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnSeed, if non-nil, is called when the scan opens a component at pos.
	OnSeed func(pos grid.Position, id uint32)

	// OnDiscover, if non-nil, is called after each cell is labeled, seeds included.
	OnDiscover func(pos grid.Position, id uint32, order int)
}

// DefaultOptions returns Options with a background context and no hooks.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithContext sets the context checked between seeds. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnSeed installs fn as the seed hook.
func WithOnSeed(fn func(pos grid.Position, id uint32)) Option {
	return func(o *Options) {
		o.OnSeed = fn
	}
}

// WithOnDiscover installs fn as the discovery hook.
func WithOnDiscover(fn func(pos grid.Position, id uint32, order int)) Option {
	return func(o *Options) {
		o.OnDiscover = fn
	}
}
