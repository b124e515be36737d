package bind

import "errors"

// ErrUnknownMethod is returned when a click-action names a method that is
// not in the method table.
var ErrUnknownMethod = errors.New("vbind: unknown method")
