package commands

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/baumundzwanzig/tkinter-preview/pkg/measure"
	"github.com/baumundzwanzig/tkinter-preview/pkg/render"
)

var RenderCmd = &cobra.Command{
	Use:   "render <tree.json> <output.png>",
	Short: "Renders the computed layout to a PNG image",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree(args[0])
		if err != nil {
			return err
		}
		oracle := newOracle()
		engine := newEngine(oracle)
		width, height := availableSize(tree)
		rects, err := engine.Layout(tree, width, height)
		if err != nil {
			return err
		}

		renderer := render.NewRenderer(int(width), int(height))
		if fm, ok := oracle.(*measure.FontMetrics); ok {
			// Draw text with the same face the sizes were measured with.
			renderer.SetFontFace(fm.Face())
		}
		renderer.Render(tree, rects)
		if err := renderer.SavePNG(args[1]); err != nil {
			return err
		}
		log.Infof("rendered %d widgets to %s", len(rects), args[1])
		return nil
	},
}
