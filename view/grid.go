package view

// Mode is the layout mode of a Panel within its Grid (spec §3.1).
type Mode int

const (
	// GridMode positions the panel by its Cell in its Grid's row/column
	// layout; HSpan/VSpan let it cover more than one cell.
	GridMode Mode = iota
	// InsetMode positions the panel at explicit normalized coordinates
	// independent of the grid layout.
	InsetMode
	// FloatingMode positions the panel at an explicit pixel offset that
	// does not participate in grid renormalization at all.
	FloatingMode
)

// Cell identifies a panel's anchor row/column in its grid.
type Cell struct{ Row, Col int }

// Panel is a rectangular viewport within a Grid (spec §3.1, grounded on
// original_source/src/panel.c's VklPanel/VklGrid pair). Coordinates are
// normalized to [0,1] except under FloatingMode.
type Panel struct {
	Cell  Cell
	HSpan int // number of columns spanned, minimum 1
	VSpan int // number of rows spanned, minimum 1
	Mode  Mode

	// computed layout, refreshed by Grid.relayout
	X, Y, Width, Height float64
}

// Grid lays out Panels in a rows x cols normalized coordinate space. A
// zero-size row/column weight is treated as a weight of 1/n (n rows or
// columns on that axis), then the whole axis is renormalized to sum to 1 — this
// mirrors _update_grid_panels in original_source/src/panel.c exactly.
type Grid struct {
	Rows, Cols int

	rowHeights []float64 // explicit weights, 0 = "equal share"
	colWidths  []float64

	rowOffsets []float64 // computed, normalized
	colOffsets []float64
	rowSizes   []float64 // computed, normalized
	colSizes   []float64

	panels []*Panel
}

// NewGrid creates a rows x cols grid with uniform row heights and column
// widths.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{
		Rows: rows, Cols: cols,
		rowHeights: make([]float64, rows),
		colWidths:  make([]float64, cols),
	}
	g.relayout()
	return g
}

// SetRowHeight sets row i's layout weight; 0 reverts it to an equal share.
func (g *Grid) SetRowHeight(i int, weight float64) {
	g.rowHeights[i] = weight
	g.relayout()
}

// SetColWidth sets column j's layout weight; 0 reverts it to an equal
// share.
func (g *Grid) SetColWidth(j int, weight float64) {
	g.colWidths[j] = weight
	g.relayout()
}

// relayout recomputes normalized offsets/sizes for every row and column,
// then refreshes every grid-mode panel's bounds.
func (g *Grid) relayout() {
	g.rowOffsets, g.rowSizes = axisLayout(g.rowHeights, g.Rows)
	g.colOffsets, g.colSizes = axisLayout(g.colWidths, g.Cols)

	for _, p := range g.panels {
		g.updatePanel(p)
	}
}

// axisLayout implements _update_grid_panels's single-axis pass: fill
// zero-weight entries with an equal share, accumulate offsets, then
// renormalize the whole axis to sum to 1.
func axisLayout(weights []float64, n int) (offsets, sizes []float64) {
	sizes = make([]float64, n)
	offsets = make([]float64, n)

	var total float64
	for i := 0; i < n; i++ {
		s := weights[i]
		if s == 0 {
			s = 1.0 / float64(n)
		}
		offsets[i] = total
		sizes[i] = s
		total += s
	}
	if total == 0 {
		return offsets, sizes
	}
	for i := 0; i < n; i++ {
		sizes[i] /= total
		offsets[i] /= total
	}
	return offsets, sizes
}

// updatePanel recomputes a single panel's bounds from the grid's current
// layout; a no-op for InsetMode and FloatingMode panels, whose bounds are
// set directly by the caller.
func (g *Grid) updatePanel(p *Panel) {
	if p.Mode != GridMode {
		return
	}
	hspan, vspan := maxInt(p.HSpan, 1), maxInt(p.VSpan, 1)

	p.X = g.colOffsets[p.Cell.Col]
	p.Y = g.rowOffsets[p.Cell.Row]
	p.Width = 0
	for c := p.Cell.Col; c < minInt(p.Cell.Col+hspan, g.Cols); c++ {
		p.Width += g.colSizes[c]
	}
	p.Height = 0
	for r := p.Cell.Row; r < minInt(p.Cell.Row+vspan, g.Rows); r++ {
		p.Height += g.rowSizes[r]
	}
}

// Panel returns the existing panel at cell, or creates a new grid-mode
// panel there (spec §3.1, grounded on panel.c's vkl_panel/_get_panel
// find-or-create idiom).
func (g *Grid) Panel(row, col int) *Panel {
	for _, p := range g.panels {
		if p.Mode == GridMode && p.Cell == (Cell{row, col}) {
			return p
		}
	}
	p := &Panel{Cell: Cell{row, col}, HSpan: 1, VSpan: 1, Mode: GridMode}
	g.panels = append(g.panels, p)
	g.updatePanel(p)
	return p
}

// Inset creates an inset panel at explicit normalized bounds, independent
// of the grid's row/column layout.
func (g *Grid) Inset(x, y, width, height float64) *Panel {
	p := &Panel{Mode: InsetMode, X: x, Y: y, Width: width, Height: height}
	g.panels = append(g.panels, p)
	return p
}

// Floating creates a panel positioned at explicit pixel coordinates that
// never participate in grid renormalization.
func (g *Grid) Floating(x, y, width, height float64) *Panel {
	p := &Panel{Mode: FloatingMode, X: x, Y: y, Width: width, Height: height}
	g.panels = append(g.panels, p)
	return p
}

// Panels returns every panel registered with the grid.
func (g *Grid) Panels() []*Panel { return g.panels }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
