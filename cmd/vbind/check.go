package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func checkCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Bind a template and list its bindings",
		Long: `Bind a template against a script's data and methods without
running any steps, and print every binding in registration order.

Unknown fields and methods fail here, with a suggestion when a
close name exists.

Examples:
  vbind check --template page.html --script counter.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, *configPath)
		},
	}

	addBindFlags(cmd)
	return cmd
}

func runCheck(cmd *cobra.Command, configPath string) error {
	s, err := openSession(cmd.Context(), cmd, configPath)
	if err != nil {
		return err
	}

	bindings := s.engine.Bindings()
	rows := make([][]string, 0, len(bindings))
	for i, b := range bindings {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			b.Kind.String(),
			b.Name,
			fmt.Sprint(b.Node),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "ANNOTATION", "NAME", "NODE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	out := cmd.OutOrStdout()
	success(out, "Bound %d bindings over %d fields", len(bindings), len(s.engine.Data().Fields()))
	info(out, "engine %s", s.engine.ID())
	fmt.Fprintln(out, t.Render())
	return nil
}
