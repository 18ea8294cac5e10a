package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/complabel/grid"
	"github.com/katalvlaran/complabel/verify"
)

// verifyRuns checks both labeled grids and reports how their orders differ.
func (c *CLI) verifyRuns(logger *log.Logger, out io.Writer, dfsGrid, bfsGrid *grid.Grid) error {
	if err := verify.Check(dfsGrid); err != nil {
		return fmt.Errorf("dfs: %w", err)
	}
	if err := verify.Check(bfsGrid); err != nil {
		return fmt.Errorf("bfs: %w", err)
	}
	rep, err := verify.Compare(dfsGrid, bfsGrid)
	if err != nil {
		return err
	}
	logger.Info("verified", "cells", rep.Cells, "components", rep.Components, "order_differs", rep.OrderDiffers)

	_, err = fmt.Fprintf(out, "\nVerified: %d components over %d cells, ids identical, %d cells discovered in a different order\n",
		rep.Components, rep.Cells, rep.OrderDiffers)

	return err
}
