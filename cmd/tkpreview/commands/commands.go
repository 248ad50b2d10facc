package commands

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/baumundzwanzig/tkinter-preview/pkg/layout"
	"github.com/baumundzwanzig/tkinter-preview/pkg/measure"
	"github.com/baumundzwanzig/tkinter-preview/pkg/widget"
)

// All lists the available commands. New commands get added here.
var All = []*cobra.Command{
	LayoutCmd,
	RenderCmd,
	TuiCmd,
}

// DefaultWidth and DefaultHeight apply when neither the flags nor the
// tree's own geometry specify the window size.
const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
)

func loadTree(path string) (*widget.Widget, error) {
	tree, err := widget.LoadTree(path)
	if err != nil {
		return nil, err
	}
	log.Debugf("loaded widget tree from %s", path)
	return tree, nil
}

// newOracle prefers real font metrics and falls back to static
// per-character pricing when fonts are unavailable or disabled.
func newOracle() layout.SizeOracle {
	if viper.GetBool("static-sizes") {
		return measure.NewStatic()
	}
	fm, err := measure.NewFontMetrics(viper.GetString("font"), viper.GetFloat64("font-size"))
	if err != nil {
		log.Warnf("falling back to static text metrics: %v", err)
		return measure.NewStatic()
	}
	return fm
}

func newEngine(oracle layout.SizeOracle) *layout.LayoutEngine {
	return layout.NewLayoutEngine(oracle,
		layout.WithMaxGridCells(intOr("max-grid-cells", layout.DefaultMaxGridCells)),
		layout.WithMaxDepth(intOr("max-depth", layout.DefaultMaxDepth)),
	)
}

// intOr guards the engine limits against unbound or zeroed settings.
func intOr(key string, def int) int {
	if v := viper.GetInt(key); v > 0 {
		return v
	}
	return def
}

// availableSize resolves the preview window size: explicit flags win,
// then the tree root's own width/height (Tk's geometry call), then the
// defaults.
func availableSize(tree *widget.Widget) (float64, float64) {
	w := viper.GetFloat64("width")
	h := viper.GetFloat64("height")
	if w <= 0 {
		if tree.Width > 0 {
			w = float64(tree.Width)
		} else {
			w = DefaultWidth
		}
	}
	if h <= 0 {
		if tree.Height > 0 {
			h = float64(tree.Height)
		} else {
			h = DefaultHeight
		}
	}
	return w, h
}
