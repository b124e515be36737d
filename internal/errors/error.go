package errors

import (
	"fmt"
	"os"
	"strings"
)

// Category groups error codes by the stage that reports them.
type Category string

const (
	CategoryBind     Category = "bind"
	CategoryRuntime  Category = "runtime"
	CategoryTemplate Category = "template"
	CategoryScript   Category = "script"
	CategoryConfig   Category = "config"
)

// contextRadius is how many lines either side of a location are shown.
const contextRadius = 2

// Location is a position in a template or script file. Column is 0 when
// unknown.
type Location struct {
	File   string
	Line   int
	Column int
}

func (l *Location) String() string {
	switch {
	case l == nil:
		return ""
	case l.Column > 0:
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	default:
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}
}

// Error is a coded vbind error. It wraps the underlying cause, so errors.Is
// matches the sentinels of pkg/reactive and pkg/bind through it.
type Error struct {
	Code       string
	Category   Category
	Message    string
	Detail     string
	Suggestion string

	// Location is the file position the error refers to, if any.
	Location *Location

	// Context holds the source lines around Location, starting at line
	// ContextStart.
	Context      []string
	ContextStart int

	Wrapped error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Code != "" {
		b.WriteString(e.Code)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Wrapped != nil {
		b.WriteString(": ")
		b.WriteString(e.Wrapped.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Wrapped }

// WithLocation records a file position and loads the surrounding lines for
// Format. An unreadable file leaves Context empty.
func (e *Error) WithLocation(file string, line, column int) *Error {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.ContextStart, e.Context = sourceContext(file, line)
	return e
}

// WithSuggestion sets the hint shown after the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// WithDetail replaces the registered detail text.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// Wrap sets the underlying cause.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// sourceContext returns the first line number and the lines within
// contextRadius of line.
func sourceContext(file string, line int) (int, []string) {
	data, err := os.ReadFile(file)
	if err != nil || line < 1 {
		return 0, nil
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if line > len(lines) {
		return 0, nil
	}
	start := max(line-contextRadius, 1)
	end := min(line+contextRadius, len(lines))
	return start, lines[start-1 : end]
}

// New returns an Error carrying the registered message and detail for code.
// Unregistered codes produce a generic message.
func New(code string) *Error {
	entry, ok := registry[code]
	if !ok {
		return &Error{Code: code, Message: "Unknown error"}
	}
	return &Error{
		Code:     code,
		Category: entry.Category,
		Message:  entry.Message,
		Detail:   entry.Detail,
	}
}

// Newf returns an uncoded Error with a formatted message.
func Newf(category Category, format string, args ...any) *Error {
	return &Error{Category: category, Message: fmt.Sprintf(format, args...)}
}

// FromError wraps err under code. An err that is already an *Error is
// returned unchanged so its code survives.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return New(code).Wrap(err)
}
