// Package errors provides structured, actionable error messages for vbind.
//
// Binding faults are developer-time integration errors: a template names a
// field the data record does not have, or a method the method table does not
// define. This package turns them into coded errors that:
//   - Name the offending template or script location when known
//   - Explain what went wrong in plain language
//   - Suggest a fix, including "did you mean" field names
//
// # Error Categories
//
// Errors are organized into categories:
//   - bind: template and data/method shape mismatches found while binding
//   - runtime: failures inside a notification chain
//   - template: malformed template input
//   - script: invalid scripts and failed expectations
//   - config: invalid CLI configuration
//
// # Error Codes
//
// Each error has a unique code (e.g., "B001") that maps to a short message
// and a detailed explanation. `vbind explain` prints the registry.
//
// Format styles its output with lipgloss against the color profile of
// stderr; DisableColors forces plain text.
//
// # Usage
//
//	err := errors.New("B001").
//	    Wrap(reactive.ErrUnknownField).
//	    WithSuggestion(`did you mean "count"?`)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR B001: Unbound field reference
//	//
//	//   An annotation names a field that does not exist in the data record.
//	//   ...
//	//
//	//   Cause: vbind: unknown field
//	//
//	//   Hint: did you mean "count"?
package errors
