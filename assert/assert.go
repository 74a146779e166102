package assert

import "github.com/oomph-ac/wallrun/oerror"

// IsTrue panics with the formatted message if ok is false. It is meant for programming
// errors only; simulation paths fall back silently instead of asserting.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
