package reactive

import "errors"

// ErrUnknownField is returned when a field name is not part of the record.
// It indicates a mismatch between a template and its data.
var ErrUnknownField = errors.New("vbind: unknown field")

// ErrUnsupportedValue is returned when a record value is not a scalar
// (string, bool, number or nil).
var ErrUnsupportedValue = errors.New("vbind: unsupported field value")
