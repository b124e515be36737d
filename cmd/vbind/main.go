package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	vberrors "github.com/vango-dev/vbind/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		vberrors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		noColor    bool
	)

	rootCmd := &cobra.Command{
		Use:   "vbind",
		Short: "Bind HTML templates to reactive data",
		Long: `vbind binds annotated HTML templates to a flat data record.

Elements opt in through four attributes:

  one-way-text="field"            text follows the field
  conditional-visibility="field"  shown while the field is true
  two-way-value="field"           value follows the field, input writes back
  click-action="method"           clicks run a script method

A YAML script supplies the data, the methods, and the steps to run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
				vberrors.DisableColors()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default ./vbind.yaml if present)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		initCmd(),
		runCmd(&configPath),
		checkCmd(&configPath),
		explainCmd(),
		versionCmd(),
	)
	return rootCmd
}

var successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", successStyle.Render("✓"), fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
