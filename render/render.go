package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/complabel/grid"
	"github.com/katalvlaran/complabel/label"
)

// cellFormat renders one cell as label (right-aligned) and order (left-aligned).
const cellFormat = "%3d,%-3d"

// palette cycles over component ids.
var palette = []lipgloss.Color{
	lipgloss.Color("36"),  // teal
	lipgloss.Color("35"),  // green
	lipgloss.Color("220"), // amber
	lipgloss.Color("75"),  // light blue
	lipgloss.Color("167"), // soft red
	lipgloss.Color("141"), // violet
	lipgloss.Color("214"), // orange
	lipgloss.Color("255"), // white
}

var colorDim = lipgloss.Color("240")

// Option configures Text.
type Option func(*options)

type options struct {
	color bool
}

// WithColor enables or disables component colouring. Default is enabled.
func WithColor(on bool) Option {
	return func(o *options) {
		o.color = on
	}
}

// Text writes the interior of g to w, one grid row per line.
func Text(w io.Writer, g *grid.Grid, opts ...Option) error {
	o := options{color: true}
	for _, opt := range opts {
		opt(&o)
	}

	var styles []lipgloss.Style
	var dim lipgloss.Style
	if o.color {
		r := lipgloss.NewRenderer(w)
		styles = make([]lipgloss.Style, len(palette))
		for i, c := range palette {
			styles[i] = r.NewStyle().Foreground(c)
		}
		dim = r.NewStyle().Foreground(colorDim)
	}

	bw := bufio.NewWriter(w)
	n := g.Dimension()
	for r := 1; r <= n; r++ {
		for c := 1; c <= n; c++ {
			cell := g.At(grid.Position{Row: r, Col: c})
			s := fmt.Sprintf(cellFormat, cell.Label(), cell.Order())
			if o.color {
				if cell.State() == grid.Labeled {
					s = styles[int(cell.ID()-label.FirstID)%len(styles)].Render(s)
				} else {
					s = dim.Render(s)
				}
			}
			if _, err := bw.WriteString(s); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Summary writes a one-line digest of a run's counters.
func Summary(w io.Writer, name string, res label.Result) error {
	_, err := fmt.Fprintf(w, "%s: %d components, %d cells, next id %d, next order %d, peak frontier %d\n",
		name, res.Components, res.Foreground, res.NextID, res.NextOrder, res.MaxFrontier)

	return err
}
