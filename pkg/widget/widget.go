package widget

import (
	"fmt"
	"strings"
)

// Kind identifies the widget type. The kind decides whether a widget may
// own children and how an intrinsic-size oracle interprets its options.
type Kind string

const (
	KindToplevel    Kind = "toplevel"
	KindFrame       Kind = "frame"
	KindLabelFrame  Kind = "labelframe"
	KindLabel       Kind = "label"
	KindButton      Kind = "button"
	KindEntry       Kind = "entry"
	KindText        Kind = "text"
	KindCheckbutton Kind = "checkbutton"
	KindRadiobutton Kind = "radiobutton"
	KindListbox     Kind = "listbox"
	KindCanvas      Kind = "canvas"
)

// IsContainer reports whether widgets of this kind may own children.
func (k Kind) IsContainer() bool {
	switch k {
	case KindToplevel, KindFrame, KindLabelFrame:
		return true
	}
	return false
}

// Side names the cavity edge a packed child is carved from.
type Side string

const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
	SideRight  Side = "right"
)

// Horizontal reports whether the side consumes horizontal cavity extent.
func (s Side) Horizontal() bool {
	return s == SideLeft || s == SideRight
}

// Fill controls which axes a packed child stretches to cover its slab.
type Fill string

const (
	FillNone Fill = "none"
	FillX    Fill = "x"
	FillY    Fill = "y"
	FillBoth Fill = "both"
)

// Pad is an outer padding amount along one axis: either symmetric
// (scalar) or an asymmetric before/after pair, mirroring Tk's
// padx=N and padx=(N, M) forms.
type Pad struct {
	Before float64
	After  float64
}

// PadAll returns a symmetric Pad.
func PadAll(v float64) Pad {
	return Pad{Before: v, After: v}
}

// Total is the combined extent the padding adds along its axis.
func (p Pad) Total() float64 {
	return p.Before + p.After
}

// Sticky is the set of cell edges a gridded child is anchored to.
// Both flags of an axis present means stretch along that axis; none
// means centered.
type Sticky struct {
	N, S, E, W bool
}

// ParseSticky parses Tk sticky strings such as "nsew", "e" or "".
func ParseSticky(s string) (Sticky, error) {
	var st Sticky
	for _, r := range strings.ToLower(s) {
		switch r {
		case 'n':
			st.N = true
		case 's':
			st.S = true
		case 'e':
			st.E = true
		case 'w':
			st.W = true
		case ' ', ',', '+':
			// Tk tolerates separators inside sticky specs.
		default:
			return Sticky{}, fmt.Errorf("invalid sticky character %q in %q", r, s)
		}
	}
	return st, nil
}

func (s Sticky) String() string {
	var b strings.Builder
	if s.N {
		b.WriteByte('n')
	}
	if s.S {
		b.WriteByte('s')
	}
	if s.E {
		b.WriteByte('e')
	}
	if s.W {
		b.WriteByte('w')
	}
	return b.String()
}

// PackDirective describes how a child is placed by the pack manager.
type PackDirective struct {
	Side   Side
	Fill   Fill
	Expand bool
	PadX   Pad
	PadY   Pad
	IPadX  float64
	IPadY  float64
}

// NewPackDirective returns a directive with Tk's defaults: side=top,
// fill=none, no padding.
func NewPackDirective() *PackDirective {
	return &PackDirective{Side: SideTop, Fill: FillNone}
}

// GridDirective describes how a child is placed by the grid manager.
// Row and Column of -1 mean "next free cell" (resolved during layout,
// never written back).
type GridDirective struct {
	Row        int
	Column     int
	RowSpan    int
	ColumnSpan int
	Sticky     Sticky
	PadX       Pad
	PadY       Pad
}

// NewGridDirective returns a directive with Tk's defaults: automatic
// placement, spans of 1, centered.
func NewGridDirective() *GridDirective {
	return &GridDirective{Row: -1, Column: -1, RowSpan: 1, ColumnSpan: 1}
}

// Widget is one node of the declarative tree the previewer lays out.
// Leaves get their intrinsic size from an oracle; containers derive
// theirs from their children. Exactly one of Pack/Grid must be set on
// every child of a managed container, and all siblings must use the
// same manager.
type Widget struct {
	ID   string
	Kind Kind

	// Oracle/renderer options, mirroring the Tk widget options that
	// influence geometry. Width and Height are in Tk units: characters
	// and lines for text-like widgets, pixels for canvases.
	Text       string
	Title      string
	Width      int
	Height     int
	Background string

	Pack *PackDirective
	Grid *GridDirective

	// Per-container track weights (grid_rowconfigure /
	// grid_columnconfigure). Indexes past the occupied extent are legal
	// and reserve empty weighted tracks.
	RowWeights    map[int]int
	ColumnWeights map[int]int

	Children []*Widget
}

// Walk visits w and every descendant depth-first in insertion order.
func (w *Widget) Walk(fn func(*Widget)) {
	fn(w)
	for _, c := range w.Children {
		c.Walk(fn)
	}
}

// Find returns the descendant (or w itself) with the given id, or nil.
func (w *Widget) Find(id string) *Widget {
	if w.ID == id {
		return w
	}
	for _, c := range w.Children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// Validate checks tree-structural rules that do not depend on layout:
// unique ids, children only under container kinds, spans at least 1,
// at most one directive per widget.
func (w *Widget) Validate() error {
	seen := make(map[string]*Widget)
	return w.validate(seen)
}

func (w *Widget) validate(seen map[string]*Widget) error {
	if w.ID == "" {
		return fmt.Errorf("widget of kind %q has no id", w.Kind)
	}
	if _, dup := seen[w.ID]; dup {
		return fmt.Errorf("duplicate widget id %q", w.ID)
	}
	seen[w.ID] = w
	if len(w.Children) > 0 && !w.Kind.IsContainer() {
		return fmt.Errorf("widget %q: kind %q cannot have children", w.ID, w.Kind)
	}
	if w.Pack != nil && w.Grid != nil {
		return fmt.Errorf("widget %q: has both pack and grid directives", w.ID)
	}
	if w.Grid != nil {
		if w.Grid.RowSpan < 1 || w.Grid.ColumnSpan < 1 {
			return fmt.Errorf("widget %q: grid spans must be at least 1", w.ID)
		}
		if w.Grid.Row < -1 || w.Grid.Column < -1 {
			return fmt.Errorf("widget %q: grid row/column must not be negative", w.ID)
		}
	}
	if w.Pack != nil {
		switch w.Pack.Side {
		case SideTop, SideBottom, SideLeft, SideRight:
		default:
			return fmt.Errorf("widget %q: invalid pack side %q", w.ID, w.Pack.Side)
		}
		switch w.Pack.Fill {
		case FillNone, FillX, FillY, FillBoth:
		default:
			return fmt.Errorf("widget %q: invalid pack fill %q", w.ID, w.Pack.Fill)
		}
	}
	for _, c := range w.Children {
		if err := c.validate(seen); err != nil {
			return err
		}
	}
	return nil
}
