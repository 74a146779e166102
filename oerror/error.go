package oerror

import "fmt"

// WallrunError is the error type returned by the I/O facing parts of the module, such as
// settings loading, packet decoding and sessions.
type WallrunError struct {
	Err string
}

// New creates a new error formatted with the given arguments.
func New(format string, args ...any) *WallrunError {
	if len(args) == 0 {
		return &WallrunError{Err: format}
	}
	return &WallrunError{Err: fmt.Sprintf(format, args...)}
}

func (e *WallrunError) Error() string {
	return e.Err
}
