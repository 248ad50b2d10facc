package widget

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// The JSON tree file format is the concrete seam to the external
// parser: whatever turns a Tk script into a widget tree writes this
// shape, the previewer reads it. One object per widget:
//
//	{
//	  "kind": "frame",
//	  "id": "main_frame",
//	  "pack": {"side": "top", "fill": "x", "padx": 10, "pady": [5, 0]},
//	  "columnconfigure": {"1": 1},
//	  "children": [ ... ]
//	}
//
// padx/pady accept a scalar or a [before, after] pair, like Tk.

type treeNode struct {
	ID              string       `json:"id,omitempty"`
	Kind            Kind         `json:"kind"`
	Text            string       `json:"text,omitempty"`
	Title           string       `json:"title,omitempty"`
	Width           int          `json:"width,omitempty"`
	Height          int          `json:"height,omitempty"`
	Background      string       `json:"background,omitempty"`
	Pack            *packNode    `json:"pack,omitempty"`
	Grid            *gridNode    `json:"grid,omitempty"`
	RowConfigure    map[int]int  `json:"rowconfigure,omitempty"`
	ColumnConfigure map[int]int  `json:"columnconfigure,omitempty"`
	Children        []*treeNode  `json:"children,omitempty"`
}

type packNode struct {
	Side   Side    `json:"side,omitempty"`
	Fill   Fill    `json:"fill,omitempty"`
	Expand bool    `json:"expand,omitempty"`
	PadX   padNode `json:"padx,omitempty"`
	PadY   padNode `json:"pady,omitempty"`
	IPadX  float64 `json:"ipadx,omitempty"`
	IPadY  float64 `json:"ipady,omitempty"`
}

type gridNode struct {
	Row        *int    `json:"row,omitempty"`
	Column     *int    `json:"column,omitempty"`
	RowSpan    *int    `json:"rowspan,omitempty"`
	ColumnSpan *int    `json:"columnspan,omitempty"`
	Sticky     string  `json:"sticky,omitempty"`
	PadX       padNode `json:"padx,omitempty"`
	PadY       padNode `json:"pady,omitempty"`
}

// padNode decodes either 10 or [10, 0].
type padNode Pad

func (p *padNode) UnmarshalJSON(data []byte) error {
	var scalar float64
	if err := json.Unmarshal(data, &scalar); err == nil {
		if scalar < 0 {
			return fmt.Errorf("padding must not be negative, got %g", scalar)
		}
		*p = padNode(PadAll(scalar))
		return nil
	}
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("padding must be a number or a [before, after] pair: %w", err)
	}
	if pair[0] < 0 || pair[1] < 0 {
		return fmt.Errorf("padding must not be negative, got [%g, %g]", pair[0], pair[1])
	}
	*p = padNode(Pad{Before: pair[0], After: pair[1]})
	return nil
}

// DecodeTree reads a JSON widget tree. Widgets without an explicit id
// get a generated one (kind plus ordinal, e.g. "label1"). The returned
// tree is validated structurally; layout-level checks (directive vs.
// manager mismatches) are the layout engine's job.
func DecodeTree(r io.Reader) (*Widget, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var root treeNode
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("decoding widget tree: %w", err)
	}
	counters := make(map[Kind]int)
	w, err := root.toWidget(counters)
	if err != nil {
		return nil, err
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// LoadTree reads a JSON widget tree from a file.
func LoadTree(path string) (*Widget, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeTree(f)
}

func (n *treeNode) toWidget(counters map[Kind]int) (*Widget, error) {
	if n.Kind == "" {
		return nil, fmt.Errorf("widget %q: missing kind", n.ID)
	}
	id := n.ID
	if id == "" {
		counters[n.Kind]++
		id = fmt.Sprintf("%s%d", n.Kind, counters[n.Kind])
	}
	w := &Widget{
		ID:            id,
		Kind:          n.Kind,
		Text:          n.Text,
		Title:         n.Title,
		Width:         n.Width,
		Height:        n.Height,
		Background:    n.Background,
		RowWeights:    n.RowConfigure,
		ColumnWeights: n.ColumnConfigure,
	}
	if n.Pack != nil {
		w.Pack = n.Pack.toDirective()
	}
	if n.Grid != nil {
		g, err := n.Grid.toDirective(id)
		if err != nil {
			return nil, err
		}
		w.Grid = g
	}
	for _, child := range n.Children {
		c, err := child.toWidget(counters)
		if err != nil {
			return nil, err
		}
		w.Children = append(w.Children, c)
	}
	return w, nil
}

func (n *packNode) toDirective() *PackDirective {
	d := NewPackDirective()
	if n.Side != "" {
		d.Side = n.Side
	}
	if n.Fill != "" {
		d.Fill = n.Fill
	}
	d.Expand = n.Expand
	d.PadX = Pad(n.PadX)
	d.PadY = Pad(n.PadY)
	d.IPadX = n.IPadX
	d.IPadY = n.IPadY
	return d
}

func (n *gridNode) toDirective(id string) (*GridDirective, error) {
	d := NewGridDirective()
	if n.Row != nil {
		d.Row = *n.Row
	}
	if n.Column != nil {
		d.Column = *n.Column
	}
	if n.RowSpan != nil {
		d.RowSpan = *n.RowSpan
	}
	if n.ColumnSpan != nil {
		d.ColumnSpan = *n.ColumnSpan
	}
	sticky, err := ParseSticky(n.Sticky)
	if err != nil {
		return nil, fmt.Errorf("widget %q: %w", id, err)
	}
	d.Sticky = sticky
	return d, nil
}
