package layout

import (
	"fmt"
	"math"
	"testing"

	"github.com/baumundzwanzig/tkinter-preview/pkg/widget"
)

// fixedSizes returns an oracle answering from a per-id table and
// failing on unknown widgets, so tests notice measurement of widgets
// they did not expect.
func fixedSizes(m map[string]Size) SizeOracle {
	return OracleFunc(func(w *widget.Widget) (Size, error) {
		sz, ok := m[w.ID]
		if !ok {
			return Size{}, fmt.Errorf("no size registered for %q", w.ID)
		}
		return sz, nil
	})
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func checkRect(t *testing.T, got Rect, want Rect, id string) {
	t.Helper()
	if !almostEqual(got.X, want.X) || !almostEqual(got.Y, want.Y) ||
		!almostEqual(got.Width, want.Width) || !almostEqual(got.Height, want.Height) {
		t.Errorf("%s: got %v, want %v", id, got, want)
	}
}

func frame(id string, children ...*widget.Widget) *widget.Widget {
	return &widget.Widget{ID: id, Kind: widget.KindFrame, Children: children}
}

func packedLeaf(id string, d *widget.PackDirective) *widget.Widget {
	return &widget.Widget{ID: id, Kind: widget.KindLabel, Pack: d}
}

// The pack_options fixture: a label with pady=10, a button with
// padx=20, a label with both, a button with inner padding. Vertical
// stacking with the declared gaps between consecutive slabs and no
// extra gap at the container edges.
func TestPackOptionsFixture(t *testing.T) {
	d1 := widget.NewPackDirective()
	d1.PadY = widget.PadAll(10)
	d2 := widget.NewPackDirective()
	d2.PadX = widget.PadAll(20)
	d3 := widget.NewPackDirective()
	d3.PadX = widget.PadAll(15)
	d3.PadY = widget.PadAll(5)
	d4 := widget.NewPackDirective()
	d4.IPadX = 10
	d4.IPadY = 5

	container := frame("root",
		packedLeaf("label1", d1),
		packedLeaf("button1", d2),
		packedLeaf("label2", d3),
		packedLeaf("button2", d4),
	)
	le := NewLayoutEngine(fixedSizes(map[string]Size{
		"label1":  {Width: 100, Height: 20},
		"button1": {Width: 120, Height: 30},
		"label2":  {Width: 140, Height: 20},
		"button2": {Width: 160, Height: 30},
	}))

	rects, err := le.ArrangePack(container, 400, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkRect(t, rects["label1"], Rect{X: 150, Y: 10, Width: 100, Height: 20}, "label1")
	checkRect(t, rects["button1"], Rect{X: 140, Y: 40, Width: 120, Height: 30}, "button1")
	checkRect(t, rects["label2"], Rect{X: 130, Y: 75, Width: 140, Height: 20}, "label2")
	// ipad inflates the requested size: 160+2*10 by 30+2*5.
	checkRect(t, rects["button2"], Rect{X: 110, Y: 100, Width: 180, Height: 40}, "button2")

	// First slab starts at the container edge; its padding is the only
	// gap above the first child.
	if rects["label1"].Y != 10 {
		t.Errorf("expected 10px top gap from label1's pady, got %g", rects["label1"].Y)
	}
	// Gap between label1 and button1 is label1's trailing pady alone.
	if gap := rects["button1"].Y - rects["label1"].Bottom(); !almostEqual(gap, 10) {
		t.Errorf("expected 10px gap between label1 and button1, got %g", gap)
	}
}

func TestPackInsertionOrderPreserved(t *testing.T) {
	var children []*widget.Widget
	sizes := make(map[string]Size)
	for i := 0; i < 5; i++ {
		d := widget.NewPackDirective()
		if i%2 == 0 {
			d.Fill = widget.FillX
		}
		d.Expand = i == 3
		id := fmt.Sprintf("w%d", i)
		children = append(children, packedLeaf(id, d))
		sizes[id] = Size{Width: 50, Height: 10 + float64(i)}
	}
	le := NewLayoutEngine(fixedSizes(sizes))
	rects, err := le.ArrangePack(frame("root", children...), 300, 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < 5; i++ {
		prev := rects[fmt.Sprintf("w%d", i-1)]
		cur := rects[fmt.Sprintf("w%d", i)]
		if cur.Y < prev.Bottom() {
			t.Errorf("w%d (y=%g) overlaps w%d (bottom=%g): insertion order broken", i, cur.Y, i-1, prev.Bottom())
		}
	}
}

func TestPackExpandSplitsLeftoverEqually(t *testing.T) {
	d1 := widget.NewPackDirective()
	d1.Fill = widget.FillBoth
	d1.Expand = true
	d2 := widget.NewPackDirective()
	d2.Fill = widget.FillBoth
	d2.Expand = true

	le := NewLayoutEngine(fixedSizes(map[string]Size{
		"a": {Width: 100, Height: 50},
		"b": {Width: 100, Height: 50},
	}))
	rects, err := le.ArrangePack(frame("root", packedLeaf("a", d1), packedLeaf("b", d2)), 400, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 300 - 2*50 = 200 leftover, 100 extra per expander.
	checkRect(t, rects["a"], Rect{X: 0, Y: 0, Width: 400, Height: 150}, "a")
	checkRect(t, rects["b"], Rect{X: 0, Y: 150, Width: 400, Height: 150}, "b")
}

func TestPackExpandWithoutFillCentersInSlab(t *testing.T) {
	d := widget.NewPackDirective()
	d.Expand = true

	le := NewLayoutEngine(fixedSizes(map[string]Size{"a": {Width: 100, Height: 50}}))
	rects, err := le.ArrangePack(frame("root", packedLeaf("a", d)), 400, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The slab grows to the whole cavity but the child keeps its size.
	checkRect(t, rects["a"], Rect{X: 150, Y: 125, Width: 100, Height: 50}, "a")
}

func TestPackHorizontalSides(t *testing.T) {
	left := widget.NewPackDirective()
	left.Side = widget.SideLeft
	right := widget.NewPackDirective()
	right.Side = widget.SideRight

	le := NewLayoutEngine(fixedSizes(map[string]Size{
		"l": {Width: 60, Height: 40},
		"r": {Width: 80, Height: 40},
	}))
	rects, err := le.ArrangePack(frame("root", packedLeaf("l", left), packedLeaf("r", right)), 400, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkRect(t, rects["l"], Rect{X: 0, Y: 30, Width: 60, Height: 40}, "l")
	checkRect(t, rects["r"], Rect{X: 320, Y: 30, Width: 80, Height: 40}, "r")
}

func TestPackOverflowClipsInsteadOfGoingNegative(t *testing.T) {
	sizes := make(map[string]Size)
	var children []*widget.Widget
	for i := 0; i < 4; i++ {
		id := fmt.Sprintf("w%d", i)
		children = append(children, packedLeaf(id, widget.NewPackDirective()))
		sizes[id] = Size{Width: 100, Height: 80}
	}
	le := NewLayoutEngine(fixedSizes(sizes))
	content := Rect{Width: 120, Height: 100}
	rects, err := le.ArrangePack(frame("root", children...), content.Width, content.Height)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for id, r := range rects {
		if r.Width < 0 || r.Height < 0 {
			t.Errorf("%s has negative extent: %v", id, r)
		}
		if !content.Contains(r) {
			t.Errorf("%s escapes the container: %v", id, r)
		}
	}
	// Later children get the clipped remains.
	if rects["w3"].Height != 0 {
		t.Errorf("expected w3 clipped to zero height, got %v", rects["w3"])
	}
}

func TestPackNoChildren(t *testing.T) {
	le := NewLayoutEngine(nil)
	rects, err := le.ArrangePack(frame("root"), 200, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rects) != 0 {
		t.Errorf("expected empty mapping, got %d rects", len(rects))
	}
}

func TestPackNaturalSize(t *testing.T) {
	top := widget.NewPackDirective()
	top.PadY = widget.PadAll(5)
	left := widget.NewPackDirective()
	left.Side = widget.SideLeft

	container := frame("root", packedLeaf("t", top), packedLeaf("l", left))
	le := NewLayoutEngine(fixedSizes(map[string]Size{
		"t": {Width: 100, Height: 20},
		"l": {Width: 40, Height: 60},
	}))
	nat, err := le.Measure(container)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The top slab (100x30 with padding) must fit above the later
	// horizontal run; the left slab adds width beside it.
	if !almostEqual(nat.Width, 100) || !almostEqual(nat.Height, 90) {
		t.Errorf("natural size: got %gx%g, want 100x90", nat.Width, nat.Height)
	}
}

func TestPackAsymmetricPadding(t *testing.T) {
	d := widget.NewPackDirective()
	d.PadY = widget.Pad{Before: 10, After: 0}

	le := NewLayoutEngine(fixedSizes(map[string]Size{"a": {Width: 50, Height: 20}}))
	rects, err := le.ArrangePack(frame("root", packedLeaf("a", d)), 100, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkRect(t, rects["a"], Rect{X: 25, Y: 10, Width: 50, Height: 20}, "a")
}
