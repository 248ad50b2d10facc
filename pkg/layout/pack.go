package layout

import (
	"github.com/baumundzwanzig/tkinter-preview/pkg/widget"
)

// Pack emulation. The container's content area starts out as a single
// free rectangle (the cavity); each child, in insertion order, carves a
// slab off the cavity edge named by its side. A slab always spans the
// full cavity extent across the packing axis; along the packing axis
// its extent is the child's requested size plus outer padding.
//
// Expansion is a documented two-pass policy rather than Tk's exact
// frame distribution: leftover cavity extent on each axis (what remains
// after summing every fixed slab on that axis) is split equally among
// the expand=true children packed on that axis, then carving runs once
// with the inflated slab extents.

// packRequest is the child's requested size: intrinsic plus twice the
// inner padding.
func packRequest(c *widget.Widget, sizes map[string]Size) Size {
	d := c.Pack
	sz := sizes[c.ID]
	return Size{
		Width:  sz.Width + 2*d.IPadX,
		Height: sz.Height + 2*d.IPadY,
	}
}

// packSlabExtent is the extent a child's slab consumes along its
// packing axis, outer padding included.
func packSlabExtent(c *widget.Widget, sizes map[string]Size) float64 {
	d := c.Pack
	req := packRequest(c, sizes)
	if d.Side.Horizontal() {
		return req.Width + d.PadX.Total()
	}
	return req.Height + d.PadY.Total()
}

// packArrange carves the content rectangle in insertion order and
// returns each child's rectangle. Children are assumed to carry pack
// directives (the driver validates). Overflowing children clip to the
// remaining cavity rather than going negative.
func packArrange(children []*widget.Widget, content Rect, sizes map[string]Size) map[string]Rect {
	rects := make(map[string]Rect, len(children))
	if len(children) == 0 {
		return rects
	}

	// First pass: fixed slab extents and expander counts per axis.
	var usedX, usedY float64
	var expandersX, expandersY int
	for _, c := range children {
		ext := packSlabExtent(c, sizes)
		if c.Pack.Side.Horizontal() {
			usedX += ext
			if c.Pack.Expand {
				expandersX++
			}
		} else {
			usedY += ext
			if c.Pack.Expand {
				expandersY++
			}
		}
	}
	var extraX, extraY float64
	if leftover := content.Width - usedX; leftover > 0 && expandersX > 0 {
		extraX = leftover / float64(expandersX)
	}
	if leftover := content.Height - usedY; leftover > 0 && expandersY > 0 {
		extraY = leftover / float64(expandersY)
	}

	// Second pass: carve.
	cavity := content
	for _, c := range children {
		d := c.Pack
		ext := packSlabExtent(c, sizes)
		var slab Rect
		switch d.Side {
		case widget.SideTop:
			if d.Expand {
				ext += extraY
			}
			if ext > cavity.Height {
				ext = cavity.Height
			}
			slab = Rect{X: cavity.X, Y: cavity.Y, Width: cavity.Width, Height: ext}
			cavity.Y += ext
			cavity.Height -= ext
		case widget.SideBottom:
			if d.Expand {
				ext += extraY
			}
			if ext > cavity.Height {
				ext = cavity.Height
			}
			slab = Rect{X: cavity.X, Y: cavity.Bottom() - ext, Width: cavity.Width, Height: ext}
			cavity.Height -= ext
		case widget.SideLeft:
			if d.Expand {
				ext += extraX
			}
			if ext > cavity.Width {
				ext = cavity.Width
			}
			slab = Rect{X: cavity.X, Y: cavity.Y, Width: ext, Height: cavity.Height}
			cavity.X += ext
			cavity.Width -= ext
		case widget.SideRight:
			if d.Expand {
				ext += extraX
			}
			if ext > cavity.Width {
				ext = cavity.Width
			}
			slab = Rect{X: cavity.Right() - ext, Y: cavity.Y, Width: ext, Height: cavity.Height}
			cavity.Width -= ext
		}
		rects[c.ID] = placeInSlab(c, slab, sizes)
	}
	return rects
}

// placeInSlab positions the child inside its slab: outer padding
// shrinks the usable area, fill stretches the matching axis, anything
// not filled keeps the requested size centered.
func placeInSlab(c *widget.Widget, slab Rect, sizes map[string]Size) Rect {
	d := c.Pack
	req := packRequest(c, sizes)
	inner := slab.Inset(d.PadX.Before, d.PadY.Before, d.PadX.After, d.PadY.After)

	w := req.Width
	if d.Fill == widget.FillX || d.Fill == widget.FillBoth {
		w = inner.Width
	} else if w > inner.Width {
		w = inner.Width
	}
	h := req.Height
	if d.Fill == widget.FillY || d.Fill == widget.FillBoth {
		h = inner.Height
	} else if h > inner.Height {
		h = inner.Height
	}
	return Rect{
		X:      inner.X + (inner.Width-w)/2,
		Y:      inner.Y + (inner.Height-h)/2,
		Width:  w,
		Height: h,
	}
}

// packNaturalSize is the container's unexpanded requirement: the area
// the cavity algorithm needs so that no slab clips. A slab must span
// the cavity left over by everything packed before it, so each child's
// cross-axis requirement is summed with the extent the earlier
// children already consumed on that axis.
func packNaturalSize(children []*widget.Widget, sizes map[string]Size) Size {
	var width, height, maxWidth, maxHeight float64
	for _, c := range children {
		d := c.Pack
		req := packRequest(c, sizes)
		reqW := req.Width + d.PadX.Total()
		reqH := req.Height + d.PadY.Total()
		if d.Side.Horizontal() {
			if h := reqH + height; h > maxHeight {
				maxHeight = h
			}
			width += reqW
		} else {
			if w := reqW + width; w > maxWidth {
				maxWidth = w
			}
			height += reqH
		}
	}
	if width > maxWidth {
		maxWidth = width
	}
	if height > maxHeight {
		maxHeight = height
	}
	return Size{Width: maxWidth, Height: maxHeight}
}
