package verify_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/complabel/bfs"
	"github.com/katalvlaran/complabel/dfs"
	"github.com/katalvlaran/complabel/grid"
	"github.com/katalvlaran/complabel/verify"
)

var plusRows = [][]int{
	{0, 0, 1, 0, 0},
	{0, 0, 1, 0, 0},
	{1, 1, 1, 1, 1},
	{0, 0, 1, 0, 0},
	{0, 0, 1, 0, 0},
}

func mustGrid(t *testing.T, rows [][]int) *grid.Grid {
	t.Helper()
	g, err := grid.FromRows(rows)
	require.NoError(t, err)

	return g
}

// labelBoth runs both labelers over independent copies of g.
func labelBoth(t *testing.T, g *grid.Grid) (*grid.Grid, *grid.Grid) {
	t.Helper()
	a, b := grid.Pair(g)
	_, err := dfs.New().Label(a)
	require.NoError(t, err)
	_, err = bfs.New().Label(b)
	require.NoError(t, err)

	return a, b
}

// TestComponents_Simple4 mirrors the classic 4×4 island fixture.
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//	1 0 0 0
func TestComponents_Simple4(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
		{1, 0, 0, 0},
	})

	comps := verify.Components(g)
	require.Len(t, comps, 3)
	assert.Len(t, comps[0], 4)
	assert.Len(t, comps[1], 2)
	assert.Len(t, comps[2], 1)
	assert.Equal(t, grid.Position{Row: 1, Col: 2}, comps[0][0])
	assert.Equal(t, grid.Position{Row: 3, Col: 3}, comps[1][0])
	assert.Equal(t, grid.Position{Row: 4, Col: 1}, comps[2][0])
}

// TestComponents_Diagonal checks that an X of corner-touching cells stays
// split into singletons under 4-connectivity.
func TestComponents_Diagonal(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	})
	assert.Len(t, verify.Components(g), 9)
	assert.Nil(t, verify.Components(nil))
}

// TestCheck_Valid accepts both labelers' output on the plus fixture.
func TestCheck_Valid(t *testing.T) {
	a, b := labelBoth(t, mustGrid(t, plusRows))
	assert.NoError(t, verify.Check(a))
	assert.NoError(t, verify.Check(b))
}

// TestCheck_Violations builds grids that break one invariant each.
func TestCheck_Violations(t *testing.T) {
	type discovery struct {
		row, col int
		id       uint32
		order    int
	}
	cases := []struct {
		name  string
		rows  [][]int
		marks []discovery
		err   error
	}{
		{"Unlabeled", [][]int{{1, 0}, {0, 0}}, nil, verify.ErrUnlabeled},
		{"OrderGap", [][]int{{1, 0}, {0, 1}}, []discovery{{1, 1, 2, 1}, {2, 2, 3, 3}}, verify.ErrOrderNotPermutation},
		{"OrderRepeat", [][]int{{1, 0}, {0, 1}}, []discovery{{1, 1, 2, 1}, {2, 2, 3, 1}}, verify.ErrOrderNotPermutation},
		{"IDSwapped", [][]int{{1, 0}, {0, 1}}, []discovery{{1, 1, 3, 1}, {2, 2, 2, 2}}, verify.ErrIDOrder},
		{"IDGap", [][]int{{1, 0}, {0, 1}}, []discovery{{1, 1, 2, 1}, {2, 2, 4, 2}}, verify.ErrIDOrder},
		{"SplitComponent", [][]int{{1, 1}, {0, 0}}, []discovery{{1, 1, 2, 1}, {1, 2, 3, 2}}, verify.ErrPartitionMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.rows)
			for _, m := range tc.marks {
				require.True(t, g.Discover(grid.Position{Row: m.row, Col: m.col}, m.id, m.order))
			}
			err := verify.Check(g)
			assert.True(t, errors.Is(err, tc.err), "Check error = %v; want %v", err, tc.err)
		})
	}

	assert.True(t, errors.Is(verify.Check(nil), verify.ErrGridNil))
}

// TestCompare_Plus is the reference scenario: one component, identical ids
// and membership, different order sequences, both permutations of 1..9.
func TestCompare_Plus(t *testing.T) {
	a, b := labelBoth(t, mustGrid(t, plusRows))

	rep, err := verify.Compare(a, b)
	require.NoError(t, err)
	assert.Equal(t, verify.Report{Cells: 9, Components: 1, OrderDiffers: 4}, rep)
	assert.False(t, rep.SameOrder())
	assert.Equal(t, a.Labels(), b.Labels())
	assert.NotEqual(t, a.Orders(), b.Orders())
}

// TestCompare_Errors covers nil input, shape and id mismatches.
func TestCompare_Errors(t *testing.T) {
	small, _ := labelBoth(t, mustGrid(t, [][]int{{1}}))
	big, _ := labelBoth(t, mustGrid(t, [][]int{{1, 0}, {0, 0}}))

	_, err := verify.Compare(small, nil)
	assert.True(t, errors.Is(err, verify.ErrGridNil), "got %v", err)

	_, err = verify.Compare(small, big)
	assert.True(t, errors.Is(err, verify.ErrShapeMismatch), "got %v", err)

	other, _ := labelBoth(t, mustGrid(t, [][]int{{0, 1}, {0, 0}}))
	_, err = verify.Compare(big, other)
	assert.True(t, errors.Is(err, verify.ErrShapeMismatch), "got %v", err)

	x := mustGrid(t, [][]int{{1, 0}, {0, 1}})
	y := x.Clone()
	require.True(t, x.Discover(grid.Position{Row: 1, Col: 1}, 2, 1))
	require.True(t, x.Discover(grid.Position{Row: 2, Col: 2}, 3, 2))
	require.True(t, y.Discover(grid.Position{Row: 1, Col: 1}, 3, 1))
	require.True(t, y.Discover(grid.Position{Row: 2, Col: 2}, 2, 2))
	_, err = verify.Compare(x, y)
	assert.True(t, errors.Is(err, verify.ErrLabelMismatch), "got %v", err)
}

// TestProperties runs both labelers over many seeded random grids and checks
// every invariant plus agreement between the two runs.
func TestProperties(t *testing.T) {
	densities := []float64{0, 0.1, 0.33, 0.5, 0.6, 0.8, 0.99}
	for _, p := range densities {
		for seed := int64(1); seed <= 10; seed++ {
			t.Run(fmt.Sprintf("p=%.2f/seed=%d", p, seed), func(t *testing.T) {
				g, err := grid.Generate(20, p, grid.WithSeed(seed))
				require.NoError(t, err)
				want := len(verify.Components(g))

				a, b := grid.Pair(g)
				ra, err := dfs.New().Label(a)
				require.NoError(t, err)
				rb, err := bfs.New().Label(b)
				require.NoError(t, err)

				assert.Equal(t, want, ra.Components)
				assert.Equal(t, want, rb.Components)
				assert.Equal(t, ra.NextID, rb.NextID)
				assert.Equal(t, ra.NextOrder, rb.NextOrder)

				require.NoError(t, verify.Check(a))
				require.NoError(t, verify.Check(b))

				rep, err := verify.Compare(a, b)
				require.NoError(t, err)
				assert.Equal(t, g.ForegroundCount(), rep.Cells)
				assert.Equal(t, want, rep.Components)
			})
		}
	}
}
