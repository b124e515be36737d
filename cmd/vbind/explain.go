package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	vberrors "github.com/vango-dev/vbind/internal/errors"
)

func explainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain [code]",
		Short: "Describe an error code",
		Long: `Print the message and detail registered for an error code such as
B001. Without an argument, list every code.

Examples:
  vbind explain
  vbind explain b001`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, codeTable().Render())
				return nil
			}

			code := strings.ToUpper(args[0])
			if !vberrors.Known(code) {
				return fmt.Errorf("unknown error code %q", args[0])
			}
			e := vberrors.New(code)
			fmt.Fprintf(out, "%s (%s): %s\n\n%s\n", e.Code, e.Category, e.Message, e.Detail)
			return nil
		},
	}
}

func codeTable() *table.Table {
	codes := vberrors.Codes()
	rows := make([][]string, 0, len(codes))
	for _, code := range codes {
		e := vberrors.New(code)
		rows = append(rows, []string{e.Code, string(e.Category), e.Message})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CODE", "CATEGORY", "MESSAGE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}
