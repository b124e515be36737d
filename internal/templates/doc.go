// Package templates provides starter projects for the vbind command.
//
// Each template writes a vbind.yaml, an annotated page.html, and a
// script.yaml that exercises the page.
//
// # Available Templates
//
//   - counter: A counter with a button and a conditional hint
//   - form: A two-way bound input echoed into a greeting
//
// # Usage
//
//	tmpl, err := templates.Get("counter")
//	if err != nil {
//	    return err
//	}
//	if err := tmpl.Create(dir, templates.Config{Title: "Counter"}); err != nil {
//	    return err
//	}
//
// # Template Variables
//
// Files use [[ ]] delimiters:
//
//	[[.Title]]  - Page title
package templates
