package measure

import (
	"fmt"
	"math"
	"sync"

	"github.com/adrg/sysfont"
	"github.com/fogleman/gg"
	fnt "golang.org/x/image/font"

	"github.com/baumundzwanzig/tkinter-preview/pkg/layout"
	"github.com/baumundzwanzig/tkinter-preview/pkg/widget"
)

// FontMetrics measures widget text with a real font face resolved from
// the system's installed fonts.
type FontMetrics struct {
	face       fnt.Face
	charWidth  float64
	lineHeight float64

	// Glyph measurement on a shared face is stateful.
	mu sync.Mutex
}

// NewFontMetrics resolves family against the installed system fonts
// and loads it at the given point size. An empty family picks the
// finder's best general match.
func NewFontMetrics(family string, size float64) (*FontMetrics, error) {
	finder := sysfont.NewFinder(nil)
	f := finder.Match(family)
	if f == nil {
		return nil, fmt.Errorf("no installed font matches %q", family)
	}
	face, err := gg.LoadFontFace(f.Filename, size)
	if err != nil {
		return nil, fmt.Errorf("loading font %s: %w", f.Filename, err)
	}
	fm := &FontMetrics{face: face}
	fm.charWidth = fm.measure("0")
	// Point-to-pixel scaling as rendered at 96dpi.
	fm.lineHeight = math.Ceil(float64(face.Metrics().Height) / 64.0 * 96 / 72)
	return fm, nil
}

// Face exposes the loaded font face so a renderer can draw with the
// same metrics the oracle measured with.
func (fm *FontMetrics) Face() fnt.Face {
	return fm.face
}

func (fm *FontMetrics) measure(text string) float64 {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	return math.Ceil(float64(fnt.MeasureString(fm.face, text)) / 64.0)
}

func (fm *FontMetrics) Measure(w *widget.Widget) (layout.Size, error) {
	sz := sizer{
		textWidth:  fm.measure,
		charWidth:  fm.charWidth,
		lineHeight: fm.lineHeight,
	}
	return sz.widgetSize(w), nil
}
