package layout

import (
	"github.com/baumundzwanzig/tkinter-preview/pkg/widget"
)

// Grid emulation. Track sizes are computed in two natural-size passes
// (span-1 children set each track's natural size, spanning children
// then widen their tracks if the sum falls short), leftover space is
// distributed by weight, and each child is finally placed in the union
// of its spanned tracks according to its sticky flags.

// gridPlacement is a child with its placement resolved: automatic rows
// and columns filled in, spans normalized. Directives themselves are
// never written back.
type gridPlacement struct {
	child   *widget.Widget
	row     int
	col     int
	rowSpan int
	colSpan int
}

type gridModel struct {
	places     []gridPlacement
	colWidths  []float64
	rowHeights []float64
}

type cellIndex struct {
	row, col int
}

// resolveGridPlacements assigns cells in insertion order. A directive
// without an explicit row lands one row past every occupied cell
// (column 0 unless given); an explicit row without a column takes the
// first free column of that row. The container's extent is bounded by
// the engine's grid cell limit.
func (le *LayoutEngine) resolveGridPlacements(container *widget.Widget) ([]gridPlacement, int, int, error) {
	occupied := make(map[cellIndex]bool)
	places := make([]gridPlacement, 0, len(container.Children))
	// Weighted tracks past the occupancy reserve extent but never steer
	// automatic placement.
	autoRow := 0
	rows, cols := 0, 0
	for k := range container.RowWeights {
		if k+1 > rows {
			rows = k + 1
		}
	}
	for k := range container.ColumnWeights {
		if k+1 > cols {
			cols = k + 1
		}
	}

	for _, c := range container.Children {
		d := c.Grid
		rowSpan, colSpan := d.RowSpan, d.ColumnSpan
		if rowSpan < 1 {
			rowSpan = 1
		}
		if colSpan < 1 {
			colSpan = 1
		}
		row, col := d.Row, d.Column
		if row < 0 {
			row = autoRow // first row past everything occupied so far
			if col < 0 {
				col = 0
			}
		} else if col < 0 {
			col = 0
			for spanOccupied(occupied, row, col, rowSpan, colSpan) {
				col++
				if (row+rowSpan)*(col+colSpan) > le.maxGridCells {
					return nil, 0, 0, &ResourceLimitError{
						WidgetID: container.ID,
						Limit:    "grid cells",
						Value:    (row + rowSpan) * (col + colSpan),
						Max:      le.maxGridCells,
					}
				}
			}
		}
		if row+rowSpan > autoRow {
			autoRow = row + rowSpan
		}
		if row+rowSpan > rows {
			rows = row + rowSpan
		}
		if col+colSpan > cols {
			cols = col + colSpan
		}
		if rows*cols > le.maxGridCells {
			return nil, 0, 0, &ResourceLimitError{
				WidgetID: container.ID,
				Limit:    "grid cells",
				Value:    rows * cols,
				Max:      le.maxGridCells,
			}
		}
		for r := row; r < row+rowSpan; r++ {
			for cc := col; cc < col+colSpan; cc++ {
				occupied[cellIndex{r, cc}] = true
			}
		}
		places = append(places, gridPlacement{child: c, row: row, col: col, rowSpan: rowSpan, colSpan: colSpan})
	}
	return places, rows, cols, nil
}

func spanOccupied(occupied map[cellIndex]bool, row, col, rowSpan, colSpan int) bool {
	for r := row; r < row+rowSpan; r++ {
		for c := col; c < col+colSpan; c++ {
			if occupied[cellIndex{r, c}] {
				return true
			}
		}
	}
	return false
}

// gridTracks computes the natural track sizes. Unoccupied, unweighted
// tracks stay at zero.
func (le *LayoutEngine) gridTracks(container *widget.Widget, sizes map[string]Size) (*gridModel, error) {
	places, rows, cols, err := le.resolveGridPlacements(container)
	if err != nil {
		return nil, err
	}
	m := &gridModel{
		places:     places,
		colWidths:  make([]float64, cols),
		rowHeights: make([]float64, rows),
	}

	// Natural pass: only span-1 children constrain a single track.
	for _, p := range places {
		d := p.child.Grid
		sz := sizes[p.child.ID]
		if p.colSpan == 1 {
			if w := sz.Width + d.PadX.Total(); w > m.colWidths[p.col] {
				m.colWidths[p.col] = w
			}
		}
		if p.rowSpan == 1 {
			if h := sz.Height + d.PadY.Total(); h > m.rowHeights[p.row] {
				m.rowHeights[p.row] = h
			}
		}
	}

	// Spanning pass: a spanning child only constrains the sum of its
	// tracks; any shortfall is spread equally across them.
	for _, p := range places {
		d := p.child.Grid
		sz := sizes[p.child.ID]
		if p.colSpan > 1 {
			spreadSpanShortfall(m.colWidths[p.col:p.col+p.colSpan], sz.Width+d.PadX.Total())
		}
		if p.rowSpan > 1 {
			spreadSpanShortfall(m.rowHeights[p.row:p.row+p.rowSpan], sz.Height+d.PadY.Total())
		}
	}
	return m, nil
}

func spreadSpanShortfall(tracks []float64, required float64) {
	var sum float64
	for _, t := range tracks {
		sum += t
	}
	if required <= sum {
		return
	}
	extra := (required - sum) / float64(len(tracks))
	for i := range tracks {
		tracks[i] += extra
	}
}

// gridNaturalSize is the container's unexpanded requirement: the sum
// of natural track sizes on each axis.
func (le *LayoutEngine) gridNaturalSize(container *widget.Widget, sizes map[string]Size) (Size, error) {
	m, err := le.gridTracks(container, sizes)
	if err != nil {
		return Size{}, err
	}
	var nat Size
	for _, w := range m.colWidths {
		nat.Width += w
	}
	for _, h := range m.rowHeights {
		nat.Height += h
	}
	return nat, nil
}

// gridArrange sizes the tracks for the allotted content rectangle and
// places every child in the union of its spanned tracks.
func (le *LayoutEngine) gridArrange(container *widget.Widget, content Rect, sizes map[string]Size) (map[string]Rect, error) {
	m, err := le.gridTracks(container, sizes)
	if err != nil {
		return nil, err
	}
	colWidths := distributeByWeight(m.colWidths, container.ColumnWeights, content.Width)
	rowHeights := distributeByWeight(m.rowHeights, container.RowWeights, content.Height)
	colOffsets := trackOffsets(colWidths, content.X)
	rowOffsets := trackOffsets(rowHeights, content.Y)

	rects := make(map[string]Rect, len(m.places))
	for _, p := range m.places {
		cell := Rect{
			X:      colOffsets[p.col],
			Y:      rowOffsets[p.row],
			Width:  spanSum(colWidths, p.col, p.colSpan),
			Height: spanSum(rowHeights, p.row, p.rowSpan),
		}
		rects[p.child.ID] = placeInCell(p.child, cell, sizes)
	}
	return rects, nil
}

// distributeByWeight hands leftover space (positive or negative) to
// weighted tracks proportionally. Zero-weight tracks keep their natural
// size in both directions; shrinking never pushes a track below zero.
func distributeByWeight(natural []float64, weights map[int]int, available float64) []float64 {
	out := make([]float64, len(natural))
	copy(out, natural)
	var total float64
	for _, t := range natural {
		total += t
	}
	leftover := available - total
	if leftover == 0 {
		return out
	}
	var weightSum int
	for i := range out {
		if w := weights[i]; w > 0 {
			weightSum += w
		}
	}
	if weightSum == 0 {
		return out
	}
	for i := range out {
		if w := weights[i]; w > 0 {
			out[i] += leftover * float64(w) / float64(weightSum)
			if out[i] < 0 {
				out[i] = 0
			}
		}
	}
	return out
}

func trackOffsets(tracks []float64, origin float64) []float64 {
	offsets := make([]float64, len(tracks)+1)
	offsets[0] = origin
	for i, t := range tracks {
		offsets[i+1] = offsets[i] + t
	}
	return offsets
}

func spanSum(tracks []float64, start, span int) float64 {
	var sum float64
	for i := start; i < start+span; i++ {
		sum += tracks[i]
	}
	return sum
}

// placeInCell applies outer padding, then sticky: both flags of an axis
// stretch, one flag pins to that edge at intrinsic size, none centers.
func placeInCell(c *widget.Widget, cell Rect, sizes map[string]Size) Rect {
	d := c.Grid
	inner := cell.Inset(d.PadX.Before, d.PadY.Before, d.PadX.After, d.PadY.After)
	sz := sizes[c.ID]

	w := sz.Width
	if w > inner.Width {
		w = inner.Width
	}
	var x float64
	switch {
	case d.Sticky.E && d.Sticky.W:
		x, w = inner.X, inner.Width
	case d.Sticky.W:
		x = inner.X
	case d.Sticky.E:
		x = inner.Right() - w
	default:
		x = inner.X + (inner.Width-w)/2
	}

	h := sz.Height
	if h > inner.Height {
		h = inner.Height
	}
	var y float64
	switch {
	case d.Sticky.N && d.Sticky.S:
		y, h = inner.Y, inner.Height
	case d.Sticky.N:
		y = inner.Y
	case d.Sticky.S:
		y = inner.Bottom() - h
	default:
		y = inner.Y + (inner.Height-h)/2
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}
