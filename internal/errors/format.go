package errors

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// detailWidth is the column at which Detail text wraps.
const detailWidth = 70

// renderer detects the color profile of stderr, where errors are printed.
var renderer = lipgloss.NewRenderer(os.Stderr)

var (
	labelStyle    = renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	codeStyle     = renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	messageStyle  = renderer.NewStyle().Foreground(lipgloss.Color("7"))
	locationStyle = renderer.NewStyle().Foreground(lipgloss.Color("6"))
	gutterStyle   = renderer.NewStyle().Foreground(lipgloss.Color("8"))
	markerStyle   = renderer.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle     = renderer.NewStyle().Foreground(lipgloss.Color("6"))
)

// DisableColors turns off styling in Format and PrintError.
func DisableColors() {
	renderer.SetColorProfile(termenv.Ascii)
}

// EnableColors forces 16-color styling regardless of the terminal.
func EnableColors() {
	renderer.SetColorProfile(termenv.ANSI)
}

// Format renders the error for a terminal: a header, the source location
// with surrounding lines, the wrapped detail, the cause, and the hint.
func (e *Error) Format() string {
	var b strings.Builder
	b.WriteString("\n")
	e.writeHeader(&b)
	e.writeSource(&b)

	if e.Detail != "" {
		for _, line := range strings.Split(ansi.Wordwrap(e.Detail, detailWidth, ""), "\n") {
			fmt.Fprintf(&b, "  %s\n", line)
		}
		b.WriteString("\n")
	}
	if e.Wrapped != nil {
		fmt.Fprintf(&b, "  %s%s\n\n", gutterStyle.Render("Cause: "), e.Wrapped.Error())
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "  %s%s\n\n", hintStyle.Render("Hint: "), e.Suggestion)
	}
	return b.String()
}

func (e *Error) writeHeader(b *strings.Builder) {
	if e.Code == "" {
		fmt.Fprintf(b, "%s %s\n\n", labelStyle.Render("ERROR:"), messageStyle.Render(e.Message))
		return
	}
	fmt.Fprintf(b, "%s %s %s\n\n",
		labelStyle.Render("ERROR"),
		codeStyle.Render(e.Code+":"),
		messageStyle.Render(e.Message))
}

// writeSource prints the location and, when the file could be read, the
// lines around it with the failing line marked.
func (e *Error) writeSource(b *strings.Builder) {
	if e.Location == nil {
		return
	}
	fmt.Fprintf(b, "  %s\n\n", locationStyle.Render(e.Location.String()))
	if len(e.Context) == 0 {
		return
	}

	bar := gutterStyle.Render(" │ ")
	for i, line := range e.Context {
		n := e.ContextStart + i
		if n != e.Location.Line {
			fmt.Fprintf(b, "    %4d%s%s\n", n, bar, line)
			continue
		}
		fmt.Fprintf(b, "  %s%4d%s%s\n", markerStyle.Render("→ "), n, bar, line)
		if e.Location.Column > 0 {
			fmt.Fprintf(b, "       %s%s%s\n",
				gutterStyle.Render("│ "),
				strings.Repeat(" ", e.Location.Column-1),
				markerStyle.Render("^"))
		}
	}
	b.WriteString("\n")
}

// FormatCompact returns the error on one line, prefixed by its location.
func (e *Error) FormatCompact() string {
	if e.Location == nil {
		return e.Error()
	}
	return e.Location.String() + ": " + e.Error()
}

// PrintError writes a formatted error to w.
// Errors that wrap an *Error anywhere in their chain use its full format.
func PrintError(w io.Writer, err error) {
	var e *Error
	if errors.As(err, &e) {
		fmt.Fprint(w, e.Format())
		return
	}
	fmt.Fprintf(w, "\n%s %s\n\n", labelStyle.Render("ERROR:"), err.Error())
}
