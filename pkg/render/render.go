package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/mazznoer/csscolorparser"
	fnt "golang.org/x/image/font"

	"github.com/baumundzwanzig/tkinter-preview/pkg/layout"
	"github.com/baumundzwanzig/tkinter-preview/pkg/widget"
)

// Renderer paints a computed layout onto a raster surface so the
// preview can be saved as a PNG. Geometry comes entirely from the
// rectangles the layout engine produced; the renderer adds only flat
// fills, hairline borders and (when a face is set) widget text.
type Renderer struct {
	context *gg.Context
	face    fnt.Face
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{context: gg.NewContext(width, height)}
}

// SetFontFace enables text drawing. Without a face, widgets render as
// bordered rectangles only.
func (r *Renderer) SetFontFace(face fnt.Face) {
	r.face = face
	if face != nil {
		r.context.SetFontFace(face)
	}
}

// Render paints the tree parents-first so children overdraw their
// containers. Widgets missing from rects (e.g. pruned subtrees) are
// skipped.
func (r *Renderer) Render(root *widget.Widget, rects map[string]layout.Rect) {
	r.context.SetRGB(1, 1, 1)
	r.context.Clear()
	root.Walk(func(w *widget.Widget) {
		rect, ok := rects[w.ID]
		if !ok || rect.Width <= 0 || rect.Height <= 0 {
			return
		}
		r.drawWidget(w, rect)
	})
}

func (r *Renderer) drawWidget(w *widget.Widget, rect layout.Rect) {
	r.context.SetColor(fillColor(w))
	r.context.DrawRectangle(rect.X, rect.Y, rect.Width, rect.Height)
	r.context.Fill()

	r.context.SetColor(color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff})
	r.context.SetLineWidth(1)
	r.context.DrawRectangle(rect.X+0.5, rect.Y+0.5, rect.Width-1, rect.Height-1)
	r.context.Stroke()

	if r.face != nil && w.Text != "" && !w.Kind.IsContainer() {
		r.context.SetRGB(0, 0, 0)
		r.context.DrawStringAnchored(w.Text, rect.X+rect.Width/2, rect.Y+rect.Height/2, 0.5, 0.35)
	}
}

// fillColor picks the widget's declared background, falling back to a
// muted per-kind palette so previews are readable without styling.
func fillColor(w *widget.Widget) color.Color {
	if w.Background != "" {
		if c, err := csscolorparser.Parse(w.Background); err == nil {
			cr, cg, cb, ca := c.RGBA255()
			return color.RGBA{R: cr, G: cg, B: cb, A: ca}
		}
	}
	switch w.Kind {
	case widget.KindButton:
		return color.RGBA{R: 0xd9, G: 0xd9, B: 0xd9, A: 0xff}
	case widget.KindEntry, widget.KindText, widget.KindListbox:
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	case widget.KindCanvas:
		return color.RGBA{R: 0xf0, G: 0xf0, B: 0xff, A: 0xff}
	case widget.KindToplevel, widget.KindFrame, widget.KindLabelFrame:
		return color.RGBA{R: 0xec, G: 0xec, B: 0xec, A: 0xff}
	}
	return color.RGBA{R: 0xe4, G: 0xe4, B: 0xe4, A: 0xff}
}

// Image returns the rendered surface.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

// SavePNG writes the rendered surface to path.
func (r *Renderer) SavePNG(path string) error {
	return r.context.SavePNG(path)
}
