package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/baumundzwanzig/tkinter-preview/pkg/layout"
	"github.com/baumundzwanzig/tkinter-preview/pkg/widget"
)

var layoutCmdFlags struct {
	// format selects the output encoding: "table" or "json"
	format string
}

func init() {
	LayoutCmd.Flags().StringVarP(&layoutCmdFlags.format, "format", "f", "table", "Output format: table or json")
}

var LayoutCmd = &cobra.Command{
	Use:   "layout <tree.json>",
	Short: "Computes and prints the rectangle of every widget in the tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree(args[0])
		if err != nil {
			return err
		}
		engine := newEngine(newOracle())
		width, height := availableSize(tree)
		rects, err := engine.Layout(tree, width, height)
		if err != nil {
			return err
		}

		switch layoutCmdFlags.format {
		case "json":
			out, err := json.MarshalIndent(rects, "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(out))
			return nil
		case "table":
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "WIDGET\tKIND\tX\tY\tWIDTH\tHEIGHT")
			printRects(w, tree, rects, 0)
			return w.Flush()
		default:
			return fmt.Errorf("unknown output format %q", layoutCmdFlags.format)
		}
	},
}

// printRects walks the tree in document order so nesting stays visible
// in the indentation.
func printRects(w *tabwriter.Writer, node *widget.Widget, rects map[string]layout.Rect, depth int) {
	r := rects[node.ID]
	fmt.Fprintf(w, "%s%s\t%s\t%g\t%g\t%g\t%g\n",
		strings.Repeat("  ", depth), node.ID, node.Kind, r.X, r.Y, r.Width, r.Height)
	for _, c := range node.Children {
		printRects(w, c, rects, depth+1)
	}
}
