package templates

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/vango-dev/vbind/internal/errors"
)

// Config contains template configuration.
type Config struct {
	// Title is the page title.
	Title string
}

// Template is a starter project.
type Template struct {
	// Name is the template name.
	Name string

	// Description describes the template.
	Description string

	// Files is a map of relative paths to file contents.
	Files map[string]string
}

// Available templates.
var templates = map[string]*Template{
	"counter": counterTemplate(),
	"form":    formTemplate(),
}

// Get returns a template by name.
func Get(name string) (*Template, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, errors.New("T002").
			WithDetail("Template '" + name + "' not found").
			WithSuggestion(errors.DidYouMean(name, List()))
	}
	return tmpl, nil
}

// List returns all available template names in sorted order.
func List() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create writes the template into dir. Existing files are never overwritten.
func (t *Template) Create(dir string, cfg Config) error {
	paths := make([]string, 0, len(t.Files))
	for relPath := range t.Files {
		paths = append(paths, relPath)
		if _, err := os.Stat(filepath.Join(dir, relPath)); err == nil {
			return errors.New("T003").
				WithDetail(fmt.Sprintf("%s already exists in %s", relPath, dir))
		}
	}
	sort.Strings(paths)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, relPath := range paths {
		tmpl, err := template.New(relPath).Delims("[[", "]]").Parse(t.Files[relPath])
		if err != nil {
			return errors.Newf(errors.CategoryTemplate, "invalid template %s: %v", relPath, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, cfg); err != nil {
			return errors.Newf(errors.CategoryTemplate, "template execute error %s: %v", relPath, err)
		}

		if err := os.WriteFile(filepath.Join(dir, relPath), buf.Bytes(), 0644); err != nil {
			return err
		}
	}
	return nil
}

const configFile = `template: page.html
script: script.yaml
root: "#app"
log:
  level: info
render:
  pretty: true
`

// counterTemplate returns the counter template.
func counterTemplate() *Template {
	return &Template{
		Name:        "counter",
		Description: "A counter with a button and a conditional hint",
		Files: map[string]string{
			"vbind.yaml": configFile,
			"page.html": `<!doctype html>
<html>
<head><title>[[.Title]]</title></head>
<body>
  <div id="app">
    <h1>[[.Title]]</h1>
    <p>Count: <span id="count" one-way-text="count">0</span></p>
    <button id="inc" click-action="increment">+1</button>
    <button id="reset" click-action="reset">Reset</button>
    <p id="hint" conditional-visibility="big">That is a big number.</p>
  </div>
</body>
</html>
`,
			"script.yaml": `data:
  count: 0
  big: false
methods:
  increment:
    - add: {field: count, by: 1}
  reset:
    - set: {field: count, value: 0}
    - set: {field: big, value: false}
steps:
  - click: "#inc"
  - click: "#inc"
  - expect: {target: "#count", text: "2"}
  - expect: {target: "#hint", visible: false}
  - set: {field: big, value: true}
  - expect: {target: "#hint", visible: true}
  - click: "#reset"
  - expect: {field: count, value: 0}
`,
		},
	}
}

// formTemplate returns the form template.
func formTemplate() *Template {
	return &Template{
		Name:        "form",
		Description: "A two-way bound input echoed into a greeting",
		Files: map[string]string{
			"vbind.yaml": configFile,
			"page.html": `<!doctype html>
<html>
<head><title>[[.Title]]</title></head>
<body>
  <div id="app">
    <h1>[[.Title]]</h1>
    <label>Name <input id="name" two-way-value="name"></label>
    <p id="greeting" one-way-text="name"></p>
    <button id="details" click-action="toggle">Details</button>
    <section id="panel" conditional-visibility="open">
      <p>Bound with vbind.</p>
    </section>
  </div>
</body>
</html>
`,
			"script.yaml": `data:
  name: world
  open: false
methods:
  toggle:
    - toggle: open
steps:
  - expect: {target: "#greeting", text: world}
  - input: {target: "#name", value: vbind}
  - expect: {target: "#greeting", text: vbind}
  - expect: {field: name, value: vbind}
  - click: "#details"
  - expect: {target: "#panel", visible: true}
`,
		},
	}
}
