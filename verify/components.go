package verify

import "github.com/katalvlaran/complabel/grid"

// Components returns the 4-connected components of g's foreground cells,
// Unvisited and Labeled alike, ignoring any assigned ids.
// Components are listed in raster order of their first cell; each component
// lists its cells in BFS order from that cell.
//
// Time:   O(D²).
// Memory: O(D²) for visited flags and output.
func Components(g *grid.Grid) [][]grid.Position {
	if g == nil {
		return nil
	}
	dim := g.Dimension()
	stride := dim + 2
	seen := make([]bool, stride*stride)
	var comps [][]grid.Position

	g.Each(func(p grid.Position, c grid.Cell) {
		i0 := p.Row*stride + p.Col
		if !c.IsForeground() || seen[i0] {
			return
		}
		// BFS to collect component
		queue := []grid.Position{p}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, d := range grid.Directions {
				v := u.Step(d)
				vi := v.Row*stride + v.Col
				if !g.At(v).IsForeground() || seen[vi] {
					continue
				}
				seen[vi] = true
				queue = append(queue, v)
			}
		}
		comps = append(comps, queue)
	})

	return comps
}
