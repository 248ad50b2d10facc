// Package measure provides intrinsic-size oracles for the layout
// engine. An oracle answers "how big does this leaf widget want to be",
// interpreting the Tk-style width/height options of each widget kind:
// characters and lines for text-like widgets, pixels for canvases.
//
// Two implementations are provided: Static, which prices text at a
// fixed per-character width and needs no display resources at all, and
// FontMetrics, which measures real font glyphs. Both share the same
// per-kind chrome so layouts differ only in text extents.
package measure

import (
	"github.com/baumundzwanzig/tkinter-preview/pkg/layout"
	"github.com/baumundzwanzig/tkinter-preview/pkg/widget"
)

// Default option values when a widget does not set width/height,
// following Tk's widget defaults.
const (
	defaultEntryChars   = 20
	defaultTextChars    = 80
	defaultTextLines    = 24
	defaultListboxChars = 20
	defaultListboxLines = 10
	defaultCanvasWidth  = 300
	defaultCanvasHeight = 200
)

// Per-kind chrome: borders, internal padding and indicators that Tk
// adds around the content. Coarse approximations; pixel-perfect
// metrics are explicitly out of scope.
const (
	labelChromeX   = 8
	labelChromeY   = 8
	buttonChromeX  = 24
	buttonChromeY  = 12
	entryChromeX   = 12
	entryChromeY   = 10
	textChrome     = 4
	indicatorWidth = 20
)

// sizer turns widget options into an intrinsic size given a way to
// measure text. charWidth and lineHeight price character/line units.
type sizer struct {
	textWidth  func(string) float64
	charWidth  float64
	lineHeight float64
}

func (s sizer) widgetSize(w *widget.Widget) layout.Size {
	chars := func(n, def int) float64 {
		if n <= 0 {
			n = def
		}
		return float64(n) * s.charWidth
	}
	lines := func(n, def int) float64 {
		if n <= 0 {
			n = def
		}
		return float64(n) * s.lineHeight
	}
	switch w.Kind {
	case widget.KindLabel:
		return layout.Size{
			Width:  s.textWidth(w.Text) + labelChromeX,
			Height: s.lineHeight + labelChromeY,
		}
	case widget.KindButton:
		return layout.Size{
			Width:  s.textWidth(w.Text) + buttonChromeX,
			Height: s.lineHeight + buttonChromeY,
		}
	case widget.KindCheckbutton, widget.KindRadiobutton:
		return layout.Size{
			Width:  indicatorWidth + s.textWidth(w.Text) + labelChromeX,
			Height: s.lineHeight + labelChromeY,
		}
	case widget.KindEntry:
		return layout.Size{
			Width:  chars(w.Width, defaultEntryChars) + entryChromeX,
			Height: s.lineHeight + entryChromeY,
		}
	case widget.KindText:
		return layout.Size{
			Width:  chars(w.Width, defaultTextChars) + textChrome,
			Height: lines(w.Height, defaultTextLines) + textChrome,
		}
	case widget.KindListbox:
		return layout.Size{
			Width:  chars(w.Width, defaultListboxChars) + textChrome,
			Height: lines(w.Height, defaultListboxLines) + textChrome,
		}
	case widget.KindCanvas:
		sz := layout.Size{Width: defaultCanvasWidth, Height: defaultCanvasHeight}
		if w.Width > 0 {
			sz.Width = float64(w.Width)
		}
		if w.Height > 0 {
			sz.Height = float64(w.Height)
		}
		return sz
	}
	// Container kinds never reach the oracle; unknown kinds request
	// nothing.
	return layout.Size{}
}

// Static measures text at a fixed per-character width. Deterministic
// and free of font dependencies, it backs tests and fontless preview
// runs. Per-widget overrides win over the computed size.
type Static struct {
	CharWidth  float64
	LineHeight float64
	Widgets    map[string]layout.Size
}

// NewStatic returns a Static oracle with terminal-ish metrics: 7px
// characters on 16px lines.
func NewStatic() *Static {
	return &Static{CharWidth: 7, LineHeight: 16}
}

func (s *Static) Measure(w *widget.Widget) (layout.Size, error) {
	if sz, ok := s.Widgets[w.ID]; ok {
		return sz, nil
	}
	sz := sizer{
		textWidth:  func(t string) float64 { return float64(len([]rune(t))) * s.CharWidth },
		charWidth:  s.CharWidth,
		lineHeight: s.LineHeight,
	}
	return sz.widgetSize(w), nil
}
