package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/baumundzwanzig/tkinter-preview/cmd/tkpreview/commands"
	"github.com/baumundzwanzig/tkinter-preview/pkg/layout"
)

var flags struct {
	version bool
}

// Version is overridden at build time.
var Version = "dev"

func NewCli() *cobra.Command {
	cobra.OnInitialize(initConfig)

	rootCmd := &cobra.Command{
		Use:           "tkpreview",
		Short:         "Previews Tk widget trees by emulating the grid and pack geometry managers",
		Long:          "tkpreview computes pixel rectangles for declarative widget trees (JSON) and previews them as text, PNG or an interactive terminal view.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			switch {
			case viper.GetBool("quiet"):
				log.SetLevel(log.ErrorLevel)
			case viper.GetBool("verbose"):
				log.SetLevel(log.DebugLevel)
			default:
				log.SetLevel(log.InfoLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.version {
				cmd.Printf("tkpreview version %v\n", Version)
				return nil
			}
			return cmd.Help()
		},
	}

	rootCmd.Flags().BoolVarP(&flags.version, "version", "V", false, "Prints the version number of tkpreview and exits")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Print only error messages")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug messages")
	rootCmd.PersistentFlags().Float64P("width", "W", 0, "Available width in pixels (defaults to the tree's geometry, else 800)")
	rootCmd.PersistentFlags().Float64P("height", "H", 0, "Available height in pixels (defaults to the tree's geometry, else 600)")
	rootCmd.PersistentFlags().String("font", "", "Font family for intrinsic text measurement (system match)")
	rootCmd.PersistentFlags().Float64("font-size", 11, "Font size in points for intrinsic text measurement")
	rootCmd.PersistentFlags().Bool("static-sizes", false, "Skip font loading and use fixed per-character metrics")
	rootCmd.PersistentFlags().Int("max-grid-cells", layout.DefaultMaxGridCells, "Maximum rows*columns per grid container")
	rootCmd.PersistentFlags().Int("max-depth", layout.DefaultMaxDepth, "Maximum widget tree nesting depth")
	for _, name := range []string{"quiet", "verbose", "width", "height", "font", "font-size", "static-sizes", "max-grid-cells", "max-depth"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	for _, cmd := range commands.All {
		rootCmd.AddCommand(cmd)
	}

	return rootCmd
}

func initConfig() {
	viper.SetConfigName(".tkpreview")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME")
	if err := viper.ReadInConfig(); err == nil {
		log.Debugf("using config file %s", viper.ConfigFileUsed())
	}
	viper.SetEnvPrefix("TKPREVIEW")
	viper.AutomaticEnv()
}
