package script

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	vberrors "github.com/vango-dev/vbind/internal/errors"
	"github.com/vango-dev/vbind/pkg/reactive"
)

// Script is a parsed interaction script.
type Script struct {
	// Data is the record to bind.
	Data map[string]any `yaml:"data"`

	// Methods maps method names to operation lists.
	Methods map[string][]Op `yaml:"methods"`

	// Steps run in order after binding.
	Steps []Step `yaml:"steps"`

	// name is the file the script came from, for error locations.
	name string

	// stepLines holds the source line of each step.
	stepLines []int
}

// Op is one method operation. Exactly one field is set.
type Op struct {
	Set    *Assign    `yaml:"set,omitempty"`
	Add    *Increment `yaml:"add,omitempty"`
	Toggle string     `yaml:"toggle,omitempty"`
}

// Assign writes Value to Field.
type Assign struct {
	Field string `yaml:"field"`
	Value any    `yaml:"value"`
}

// Increment adds By to a numeric Field. By defaults to 1.
type Increment struct {
	Field string `yaml:"field"`
	By    any    `yaml:"by,omitempty"`
}

// Step is one script step. Exactly one field is set.
type Step struct {
	Set    *Assign      `yaml:"set,omitempty"`
	Click  string       `yaml:"click,omitempty"`
	Input  *InputStep   `yaml:"input,omitempty"`
	Expect *Expectation `yaml:"expect,omitempty"`
}

// InputStep types Value into the node matching Target.
type InputStep struct {
	Target string `yaml:"target"`
	Value  string `yaml:"value"`
}

// Expectation checks the view or the data after the preceding steps.
//
// With Target set, Text, Value and Visible are checked against the node when
// present. With Field set, Value is compared to the field, and a missing
// value means null.
type Expectation struct {
	Target  string  `yaml:"target,omitempty"`
	Field   string  `yaml:"field,omitempty"`
	Text    *string `yaml:"text,omitempty"`
	Value   any     `yaml:"value,omitempty"`
	Visible *bool   `yaml:"visible,omitempty"`
}

// Kind returns the step's action name.
func (s Step) Kind() string {
	switch {
	case s.Set != nil:
		return "set"
	case s.Click != "":
		return "click"
	case s.Input != nil:
		return "input"
	case s.Expect != nil:
		return "expect"
	default:
		return ""
	}
}

// Kind returns the operation name.
func (o Op) Kind() string {
	switch {
	case o.Set != nil:
		return "set"
	case o.Add != nil:
		return "add"
	case o.Toggle != "":
		return "toggle"
	default:
		return ""
	}
}

// ParseFile reads and parses a script file.
func ParseFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, vberrors.New("S001").Wrap(err).
			WithDetail("Failed to read script " + path)
	}
	return Parse(bytes.NewReader(data), path)
}

// Parse decodes a script. name is used in error locations.
// Unknown keys are rejected.
func Parse(r io.Reader, name string) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, vberrors.New("S001").Wrap(err)
	}

	var s Script
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil && err != io.EOF {
		return nil, vberrors.New("S001").Wrap(err).
			WithDetail("Failed to parse " + name + ": " + err.Error())
	}
	s.name = name
	s.stepLines = stepLines(data)

	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// stepLines returns the source line of each item under the top-level steps
// key. Decode errors are ignored; Parse has already reported them.
func stepLines(data []byte) []int {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil || len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "steps" {
			continue
		}
		var lines []int
		for _, item := range root.Content[i+1].Content {
			lines = append(lines, item.Line)
		}
		return lines
	}
	return nil
}

// line returns the source line of step i, or 0.
func (s *Script) line(i int) int {
	if i < len(s.stepLines) {
		return s.stepLines[i]
	}
	return 0
}

// Name returns the name the script was parsed under.
func (s *Script) Name() string {
	return s.name
}

func (s *Script) validate() error {
	names := make([]string, 0, len(s.Methods))
	for name := range s.Methods {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for i, op := range s.Methods[name] {
			if err := op.validate(); err != nil {
				return vberrors.New("S004").
					WithDetail(fmt.Sprintf("methods.%s[%d]: %v", name, i, err))
			}
		}
	}

	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return s.stepError("S001", i, err)
		}
	}
	return nil
}

func (o Op) validate() error {
	n := 0
	if o.Set != nil {
		n++
		if o.Set.Field == "" {
			return fmt.Errorf("set: field is required")
		}
	}
	if o.Add != nil {
		n++
		if o.Add.Field == "" {
			return fmt.Errorf("add: field is required")
		}
		if o.Add.By != nil && !reactive.IsNumber(o.Add.By) {
			return fmt.Errorf("add: by must be a number, got %T", o.Add.By)
		}
	}
	if o.Toggle != "" {
		n++
	}
	if n != 1 {
		return fmt.Errorf("expected exactly one of set, add, toggle")
	}
	return nil
}

func (s Step) validate() error {
	n := 0
	if s.Set != nil {
		n++
		if s.Set.Field == "" {
			return fmt.Errorf("set: field is required")
		}
	}
	if s.Click != "" {
		n++
	}
	if s.Input != nil {
		n++
		if s.Input.Target == "" {
			return fmt.Errorf("input: target is required")
		}
	}
	if s.Expect != nil {
		n++
		e := s.Expect
		if (e.Target == "") == (e.Field == "") {
			return fmt.Errorf("expect: exactly one of target, field is required")
		}
		if e.Field != "" && (e.Text != nil || e.Visible != nil) {
			return fmt.Errorf("expect: field expectations only check value")
		}
		if e.Target != "" && e.Text == nil && e.Value == nil && e.Visible == nil {
			return fmt.Errorf("expect: nothing to check on %s", e.Target)
		}
	}
	if n != 1 {
		return fmt.Errorf("expected exactly one of set, click, input, expect")
	}
	return nil
}

// stepError builds a coded error located at step i.
func (s *Script) stepError(code string, i int, err error) *vberrors.Error {
	e := vberrors.New(code).
		WithDetail(fmt.Sprintf("steps[%d]: %v", i, err))
	if line := s.line(i); line > 0 && s.name != "" {
		e = e.WithLocation(s.name, line, 0)
	}
	return e
}
