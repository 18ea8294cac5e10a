package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/complabel/bfs"
	"github.com/katalvlaran/complabel/config"
	"github.com/katalvlaran/complabel/dfs"
	"github.com/katalvlaran/complabel/grid"
	"github.com/katalvlaran/complabel/label"
	"github.com/katalvlaran/complabel/render"
)

// strategy pairs a display name with a labeler.
type strategy struct {
	name    string
	title   string
	labeler label.Labeler
}

// run generates the image, labels both copies and prints every stage.
func (c *CLI) run(ctx context.Context, cfg config.Config, out io.Writer) error {
	logger := loggerFromContext(ctx).With("run", uuid.NewString()[:8])

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("generating grid", "dimension", cfg.Dimension, "density", cfg.Density, "seed", seed)

	g, err := grid.Generate(cfg.Dimension, cfg.Density, grid.WithSeed(seed))
	if err != nil {
		return fmt.Errorf("generate grid: %w", err)
	}
	logger.Debug("grid ready", "foreground", g.ForegroundCount())

	dfsGrid, bfsGrid := grid.Pair(g)
	grids := []*grid.Grid{dfsGrid, bfsGrid}

	hooks := func(name string) []label.Option {
		l := logger.With("strategy", name)
		return []label.Option{
			label.WithContext(ctx),
			label.WithOnSeed(func(p grid.Position, id uint32) {
				l.Debug("component seed", "id", id, "row", p.Row, "col", p.Col)
			}),
		}
	}
	strategies := []strategy{
		{name: "dfs", title: "Depth First Search", labeler: dfs.New(hooks("dfs")...)},
		{name: "bfs", title: "Breadth First Search", labeler: bfs.New(hooks("bfs")...)},
	}

	ropts := []render.Option{render.WithColor(cfg.Color)}
	for i, s := range strategies {
		fmt.Fprintf(out, "\n%s Grid:\n", s.title)
		if err := render.Text(out, grids[i], ropts...); err != nil {
			return err
		}
	}

	for i, s := range strategies {
		fmt.Fprintf(out, "\nRunning %s . . .\n", s.title)
		sw := startStopwatch(logger)
		res, err := s.labeler.Label(grids[i])
		if err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		sw.stop("labeled", res.Foreground, "strategy", s.name, "components", res.Components)

		fmt.Fprintf(out, "\nResulting Grid (%s):\n", s.name)
		if err := render.Text(out, grids[i], ropts...); err != nil {
			return err
		}
		if err := render.Summary(out, s.name, res); err != nil {
			return err
		}
	}

	if !cfg.Verify {
		return nil
	}

	return c.verifyRuns(logger, out, dfsGrid, bfsGrid)
}
