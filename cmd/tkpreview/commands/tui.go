package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/baumundzwanzig/tkinter-preview/pkg/tui"
)

var TuiCmd = &cobra.Command{
	Use:   "tui <tree.json>",
	Short: "Shows the layout in the terminal, re-laying out on every resize",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree(args[0])
		if err != nil {
			return err
		}
		engine := newEngine(newOracle())
		program := tea.NewProgram(tui.New(engine, tree), tea.WithAltScreen())
		_, err = program.Run()
		return err
	},
}
