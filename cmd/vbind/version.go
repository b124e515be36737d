package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var versionKeyStyle = lipgloss.NewStyle().Width(12).Foreground(lipgloss.Color("8"))

func versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print the vbind version. Builds without release ldflags fall back to
the VCS revision recorded by the Go toolchain.`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, version)
				return
			}
			for _, kv := range buildDetails() {
				fmt.Fprintf(out, "%s%s\n", versionKeyStyle.Render(kv[0]), kv[1])
			}
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only the version number")
	return cmd
}

// buildDetails returns the version lines in display order.
func buildDetails() [][2]string {
	rev, built := commit, date
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && rev == "none":
				rev = s.Value
			case s.Key == "vcs.time" && built == "unknown":
				built = s.Value
			}
		}
	}
	return [][2]string{
		{"version", version},
		{"commit", rev},
		{"built", built},
		{"go", runtime.Version()},
		{"platform", runtime.GOOS + "/" + runtime.GOARCH},
	}
}
