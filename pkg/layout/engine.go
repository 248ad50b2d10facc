package layout

import (
	"fmt"

	"github.com/baumundzwanzig/tkinter-preview/pkg/widget"
)

// SizeOracle supplies the natural (unconstrained) size of leaf
// widgets. It stands in for live widget measurement: font metrics,
// borders and the widget's own options are all the oracle's business.
// Implementations must be safe for repeated calls and must not mutate
// the widget.
type SizeOracle interface {
	Measure(w *widget.Widget) (Size, error)
}

// OracleFunc adapts a plain function to the SizeOracle interface.
type OracleFunc func(*widget.Widget) (Size, error)

func (f OracleFunc) Measure(w *widget.Widget) (Size, error) {
	return f(w)
}

const (
	// DefaultMaxGridCells bounds rows*columns per grid container.
	DefaultMaxGridCells = 10000
	// DefaultMaxDepth bounds widget tree nesting.
	DefaultMaxDepth = 64
)

// LayoutEngine computes pixel rectangles for a widget tree. A single
// engine is reusable and safe for concurrent Layout calls as long as
// the trees and the oracle are not mutated during a call; the engine
// itself keeps no per-pass state.
type LayoutEngine struct {
	oracle       SizeOracle
	maxGridCells int
	maxDepth     int
}

// Option configures a LayoutEngine.
type Option func(*LayoutEngine)

// WithMaxGridCells bounds the grid extent (rows times columns) of any
// single container. Exceeding it yields a ResourceLimitError.
func WithMaxGridCells(n int) Option {
	return func(le *LayoutEngine) { le.maxGridCells = n }
}

// WithMaxDepth bounds widget tree nesting. Exceeding it yields a
// ResourceLimitError.
func WithMaxDepth(n int) Option {
	return func(le *LayoutEngine) { le.maxDepth = n }
}

// NewLayoutEngine returns an engine using the given oracle for leaf
// sizes. A nil oracle measures every leaf as 0x0.
func NewLayoutEngine(oracle SizeOracle, opts ...Option) *LayoutEngine {
	le := &LayoutEngine{
		oracle:       oracle,
		maxGridCells: DefaultMaxGridCells,
		maxDepth:     DefaultMaxDepth,
	}
	if le.oracle == nil {
		le.oracle = OracleFunc(func(*widget.Widget) (Size, error) { return Size{}, nil })
	}
	for _, opt := range opts {
		opt(le)
	}
	return le
}

// Layout computes a rectangle for every widget in the tree. The root
// is allotted the full available area at (0, 0); every other rectangle
// is expressed in the same coordinate space and contained in its
// parent's. The input tree is never mutated, and running Layout twice
// on the same inputs yields identical results.
func (le *LayoutEngine) Layout(root *widget.Widget, availableWidth, availableHeight float64) (map[string]Rect, error) {
	sizes := make(map[string]Size)
	if err := le.measure(root, 1, sizes); err != nil {
		return nil, err
	}
	rects := make(map[string]Rect, len(sizes))
	rects[root.ID] = Rect{Width: nonNegative(availableWidth), Height: nonNegative(availableHeight)}
	if err := le.arrange(root, rects[root.ID], sizes, rects); err != nil {
		return nil, err
	}
	return rects, nil
}

// Measure returns the widget's intrinsic size: the oracle's answer for
// a leaf, the natural unexpanded requirement of its own manager for a
// container, 0x0 for an empty container.
func (le *LayoutEngine) Measure(w *widget.Widget) (Size, error) {
	sizes := make(map[string]Size)
	if err := le.measure(w, 1, sizes); err != nil {
		return Size{}, err
	}
	return sizes[w.ID], nil
}

// ArrangePack lays out the container's pack-managed children inside an
// availableWidth by availableHeight area anchored at (0, 0) and returns
// the direct children's rectangles keyed by widget id.
func (le *LayoutEngine) ArrangePack(container *widget.Widget, availableWidth, availableHeight float64) (map[string]Rect, error) {
	sizes, m, err := le.measureChildren(container)
	if err != nil {
		return nil, err
	}
	if m == managerGrid {
		return nil, &ConfigurationError{WidgetID: container.ID, Reason: "children are grid-managed, not pack-managed"}
	}
	content := Rect{Width: nonNegative(availableWidth), Height: nonNegative(availableHeight)}
	return packArrange(container.Children, content, sizes), nil
}

// ArrangeGrid is the grid counterpart of ArrangePack.
func (le *LayoutEngine) ArrangeGrid(container *widget.Widget, availableWidth, availableHeight float64) (map[string]Rect, error) {
	sizes, m, err := le.measureChildren(container)
	if err != nil {
		return nil, err
	}
	if m == managerPack {
		return nil, &ConfigurationError{WidgetID: container.ID, Reason: "children are pack-managed, not grid-managed"}
	}
	content := Rect{Width: nonNegative(availableWidth), Height: nonNegative(availableHeight)}
	return le.gridArrange(container, content, sizes)
}

type manager int

const (
	managerNone manager = iota
	managerPack
	managerGrid
)

// managerOf derives the container's geometry strategy from its
// children's directives. Every managed child must carry exactly one
// directive and all siblings must agree on the strategy.
func managerOf(w *widget.Widget) (manager, error) {
	m := managerNone
	for _, c := range w.Children {
		var cm manager
		switch {
		case c.Pack != nil && c.Grid != nil:
			return managerNone, &ConfigurationError{WidgetID: c.ID, Reason: "has both pack and grid directives"}
		case c.Pack != nil:
			cm = managerPack
		case c.Grid != nil:
			cm = managerGrid
		default:
			return managerNone, &ConfigurationError{WidgetID: c.ID, Reason: "managed child has no placement directive"}
		}
		if m == managerNone {
			m = cm
		} else if m != cm {
			return managerNone, &ConfigurationError{WidgetID: w.ID, Reason: "container mixes grid and pack children"}
		}
	}
	return m, nil
}

// measure fills sizes bottom-up for w and its subtree.
func (le *LayoutEngine) measure(w *widget.Widget, depth int, sizes map[string]Size) error {
	if depth > le.maxDepth {
		return &ResourceLimitError{WidgetID: w.ID, Limit: "nesting depth", Value: depth, Max: le.maxDepth}
	}
	if len(w.Children) == 0 {
		if w.Kind.IsContainer() {
			// An empty container requests no space of its own.
			sizes[w.ID] = Size{}
			return nil
		}
		sz, err := le.oracle.Measure(w)
		if err != nil {
			return &OracleError{WidgetID: w.ID, Err: err}
		}
		if sz.Width < 0 || sz.Height < 0 {
			return &OracleError{WidgetID: w.ID, Err: fmt.Errorf("oracle returned negative size %gx%g", sz.Width, sz.Height)}
		}
		sizes[w.ID] = sz
		return nil
	}
	for _, c := range w.Children {
		if err := le.measure(c, depth+1, sizes); err != nil {
			return err
		}
	}
	m, err := managerOf(w)
	if err != nil {
		return err
	}
	switch m {
	case managerPack:
		sizes[w.ID] = packNaturalSize(w.Children, sizes)
	case managerGrid:
		nat, err := le.gridNaturalSize(w, sizes)
		if err != nil {
			return err
		}
		sizes[w.ID] = nat
	}
	return nil
}

// measureChildren measures only the container's children, for the
// per-engine Arrange entry points.
func (le *LayoutEngine) measureChildren(container *widget.Widget) (map[string]Size, manager, error) {
	sizes := make(map[string]Size)
	for _, c := range container.Children {
		if err := le.measure(c, 1, sizes); err != nil {
			return nil, managerNone, err
		}
	}
	m, err := managerOf(container)
	if err != nil {
		return nil, managerNone, err
	}
	return sizes, m, nil
}

// arrange positions w's children inside its allotted rectangle and
// recurses, using each child's fresh rectangle as its available space.
func (le *LayoutEngine) arrange(w *widget.Widget, allotted Rect, sizes map[string]Size, out map[string]Rect) error {
	if len(w.Children) == 0 {
		return nil
	}
	m, err := managerOf(w)
	if err != nil {
		return err
	}
	var rects map[string]Rect
	switch m {
	case managerPack:
		rects = packArrange(w.Children, allotted, sizes)
	case managerGrid:
		rects, err = le.gridArrange(w, allotted, sizes)
		if err != nil {
			return err
		}
	}
	for _, c := range w.Children {
		r := rects[c.ID]
		out[c.ID] = r
		if err := le.arrange(c, r, sizes, out); err != nil {
			return err
		}
	}
	return nil
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
