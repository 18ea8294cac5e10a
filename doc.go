// Package complabel labels the 4-connected components of a binary image.
//
// The image is a square grid of foreground and background cells surrounded
// by a one-cell border. A labeler scans the interior in row-major order; each
// unlabeled foreground cell it meets seeds a new component, whose cells all
// receive the same id (2, 3, ...) and a discovery order (1, 2, ...) counted
// across the whole run. Two labelers are provided, and on the same image
// they always agree on ids while the discovery order tells them apart.
//
// Packages:
//
//	stack/   generic growable LIFO with explicit capacity doubling
//	grid/    bordered image, cell states, positions, random generation
//	label/   Labeler contract, run counters, row-major seed scan, options
//	dfs/     depth-first labeler on an explicit frame stack
//	bfs/     breadth-first labeler, order assigned at enqueue time
//	verify/  independent invariant checks and DFS/BFS comparison
//	render/  "component,order" text rendering and run summaries
//	config/  TOML settings with range checks
//
// The complabel command (cmd/complabel) wires these together: it generates an
// image, labels one copy with each strategy and prints every stage.
//
// Quick start:
//
//	g, _ := grid.Generate(10, 0.4, grid.WithSeed(1))
//	a, b := grid.Pair(g)
//	resDFS, _ := dfs.New().Label(a)
//	resBFS, _ := bfs.New().Label(b)
//	rep, _ := verify.Compare(a, b)
//	fmt.Println(resDFS.Components == resBFS.Components, rep.OrderDiffers)
package complabel
