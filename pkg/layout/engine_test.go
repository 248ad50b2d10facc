package layout

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/baumundzwanzig/tkinter-preview/pkg/widget"
)

func TestLayoutNestedContainers(t *testing.T) {
	// A pack-managed root holding a grid-managed frame: the frame's
	// intrinsic size must come from its own grid before the root's
	// cavity is carved.
	inner := frame("inner",
		griddedLeaf("a", 0, 0),
		griddedLeaf("b", 0, 1),
	)
	inner.Pack = widget.NewPackDirective()
	root := &widget.Widget{ID: "root", Kind: widget.KindToplevel, Children: []*widget.Widget{inner}}

	le := NewLayoutEngine(fixedSizes(map[string]Size{
		"a": {Width: 40, Height: 20},
		"b": {Width: 60, Height: 25},
	}))
	rects, err := le.Layout(root, 400, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// inner's natural size is the grid's: 100x25, centered in the top
	// slab of the 400px-wide cavity.
	checkRect(t, rects["inner"], Rect{X: 150, Y: 0, Width: 100, Height: 25}, "inner")
	// Children are positioned inside inner's allotted rectangle.
	checkRect(t, rects["a"], Rect{X: 150, Y: 2.5, Width: 40, Height: 20}, "a")
	checkRect(t, rects["b"], Rect{X: 190, Y: 0, Width: 60, Height: 25}, "b")

	for id, r := range rects {
		if id == "root" {
			continue
		}
		if !rects["root"].Contains(r) {
			t.Errorf("%s escapes the root: %v", id, r)
		}
	}
}

func TestLayoutIsDeterministic(t *testing.T) {
	inner := frame("inner",
		griddedLeaf("a", 0, 0, func(d *widget.GridDirective) { d.Sticky = widget.Sticky{E: true, W: true} }),
		griddedLeaf("b", 1, 0, func(d *widget.GridDirective) { d.ColumnSpan = 2 }),
	)
	inner.ColumnWeights = map[int]int{0: 1}
	inner.Pack = widget.NewPackDirective()
	inner.Pack.Fill = widget.FillBoth
	inner.Pack.Expand = true
	root := &widget.Widget{ID: "root", Kind: widget.KindToplevel, Children: []*widget.Widget{inner}}

	le := NewLayoutEngine(fixedSizes(map[string]Size{
		"a": {Width: 40, Height: 20},
		"b": {Width: 90, Height: 25},
	}))
	first, err := le.Layout(root, 500, 400)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := le.Layout(root, 500, 400)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two passes over the same tree disagree:\n%v\n%v", first, second)
	}
}

func TestEmptyContainerHasZeroIntrinsicSize(t *testing.T) {
	empty := frame("empty")
	empty.Pack = widget.NewPackDirective()
	sibling := packedLeaf("sibling", widget.NewPackDirective())
	root := &widget.Widget{ID: "root", Kind: widget.KindToplevel, Children: []*widget.Widget{empty, sibling}}

	le := NewLayoutEngine(fixedSizes(map[string]Size{"sibling": {Width: 50, Height: 20}}))
	nat, err := le.Measure(empty)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nat != (Size{}) {
		t.Errorf("empty container intrinsic size: got %+v, want zero", nat)
	}

	rects, err := le.Layout(root, 200, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rects["empty"].Height != 0 {
		t.Errorf("empty container should consume no cavity, got %v", rects["empty"])
	}
	checkRect(t, rects["sibling"], Rect{X: 75, Y: 0, Width: 50, Height: 20}, "sibling")
}

func TestLayoutNegativeAvailableSpaceClamps(t *testing.T) {
	root := &widget.Widget{ID: "root", Kind: widget.KindToplevel,
		Children: []*widget.Widget{packedLeaf("a", widget.NewPackDirective())}}
	le := NewLayoutEngine(fixedSizes(map[string]Size{"a": {Width: 10, Height: 10}}))
	rects, err := le.Layout(root, -50, -50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rects["root"].Width != 0 || rects["root"].Height != 0 {
		t.Errorf("negative available space should clamp to zero, got %v", rects["root"])
	}
}

func TestOracleFailurePropagates(t *testing.T) {
	boom := errors.New("font machinery exploded")
	le := NewLayoutEngine(OracleFunc(func(w *widget.Widget) (Size, error) {
		return Size{}, boom
	}))
	root := &widget.Widget{ID: "root", Kind: widget.KindToplevel,
		Children: []*widget.Widget{packedLeaf("victim", widget.NewPackDirective())}}

	_, err := le.Layout(root, 100, 100)
	var oErr *OracleError
	if !errors.As(err, &oErr) {
		t.Fatalf("expected OracleError, got %v", err)
	}
	if oErr.WidgetID != "victim" {
		t.Errorf("error should name the widget, got %q", oErr.WidgetID)
	}
	if !errors.Is(err, boom) {
		t.Errorf("OracleError should wrap the oracle's error")
	}
}

func TestNegativeOracleSizeIsRejected(t *testing.T) {
	le := NewLayoutEngine(OracleFunc(func(w *widget.Widget) (Size, error) {
		return Size{Width: -1, Height: 10}, nil
	}))
	root := &widget.Widget{ID: "root", Kind: widget.KindToplevel,
		Children: []*widget.Widget{packedLeaf("neg", widget.NewPackDirective())}}

	_, err := le.Layout(root, 100, 100)
	var oErr *OracleError
	if !errors.As(err, &oErr) {
		t.Fatalf("expected OracleError, got %v", err)
	}
	if oErr.WidgetID != "neg" {
		t.Errorf("error should name the widget, got %q", oErr.WidgetID)
	}
}

func TestDepthLimit(t *testing.T) {
	current := packedLeaf("leaf", widget.NewPackDirective())
	for i := 0; i < 10; i++ {
		f := frame(fmt.Sprintf("f%d", i), current)
		f.Pack = widget.NewPackDirective()
		current = f
	}
	tree := &widget.Widget{ID: "root", Kind: widget.KindToplevel, Children: []*widget.Widget{current}}

	le := NewLayoutEngine(
		fixedSizes(map[string]Size{"leaf": {Width: 10, Height: 10}}),
		WithMaxDepth(5),
	)
	_, err := le.Layout(tree, 100, 100)
	var limErr *ResourceLimitError
	if !errors.As(err, &limErr) {
		t.Fatalf("expected ResourceLimitError, got %v", err)
	}
}

func TestArrangePackRejectsGridChildren(t *testing.T) {
	container := frame("root", griddedLeaf("g", 0, 0))
	le := NewLayoutEngine(fixedSizes(map[string]Size{"g": {Width: 10, Height: 10}}))
	_, err := le.ArrangePack(container, 100, 100)
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}

func TestArrangeGridRejectsPackChildren(t *testing.T) {
	container := frame("root", packedLeaf("p", widget.NewPackDirective()))
	le := NewLayoutEngine(fixedSizes(map[string]Size{"p": {Width: 10, Height: 10}}))
	_, err := le.ArrangeGrid(container, 100, 100)
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}
