package render

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/baumundzwanzig/tkinter-preview/pkg/layout"
	"github.com/baumundzwanzig/tkinter-preview/pkg/measure"
	"github.com/baumundzwanzig/tkinter-preview/pkg/widget"
)

func renderedTree(t *testing.T) (*widget.Widget, map[string]layout.Rect) {
	t.Helper()
	d := widget.NewPackDirective()
	d.Fill = widget.FillX
	tree := &widget.Widget{ID: "root", Kind: widget.KindToplevel, Children: []*widget.Widget{
		{ID: "banner", Kind: widget.KindLabel, Text: "hello", Background: "#ff0000", Pack: d},
		{ID: "go", Kind: widget.KindButton, Text: "Go", Pack: widget.NewPackDirective()},
	}}
	le := layout.NewLayoutEngine(measure.NewStatic())
	rects, err := le.Layout(tree, 200, 100)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	return tree, rects
}

func TestRenderFillsDeclaredBackground(t *testing.T) {
	tree, rects := renderedTree(t)
	r := NewRenderer(200, 100)
	r.Render(tree, rects)

	banner := rects["banner"]
	got := r.Image().At(int(banner.X+banner.Width/2), int(banner.Y+banner.Height/2))
	cr, cg, cb, _ := got.RGBA()
	if cr>>8 != 0xff || cg>>8 != 0 || cb>>8 != 0 {
		t.Errorf("banner center = %v, want red", got)
	}
}

func TestRenderSkipsWidgetsWithoutRects(t *testing.T) {
	tree, rects := renderedTree(t)
	delete(rects, "go")
	r := NewRenderer(200, 100)
	// Must not panic on the missing rectangle.
	r.Render(tree, rects)
}

func TestSavePNG(t *testing.T) {
	tree, rects := renderedTree(t)
	r := NewRenderer(200, 100)
	r.Render(tree, rects)

	path := filepath.Join(t.TempDir(), "preview.png")
	if err := r.SavePNG(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("wrote an empty png")
	}
}

func TestFillColorFallsBackPerKind(t *testing.T) {
	button := fillColor(&widget.Widget{Kind: widget.KindButton})
	entry := fillColor(&widget.Widget{Kind: widget.KindEntry})
	if button == entry {
		t.Error("button and entry should not share a fallback color")
	}
	bad := fillColor(&widget.Widget{Kind: widget.KindButton, Background: "no-such-color"})
	if bad != button {
		t.Error("unparseable background should fall back to the kind's color")
	}
	declared := fillColor(&widget.Widget{Kind: widget.KindButton, Background: "rgb(1, 2, 3)"})
	if declared != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("declared background ignored: %v", declared)
	}
}
