package evmasm

import "fmt"

// assert panics if cond is false. Reserved for IR construction invariants
// that indicate a programmer error (e.g. an oversized Literal), not
// conditions a caller can recover from — the same posture go-ethereum's
// core/vm/program package takes with malformed bytecode-builder input,
// panicking rather than threading an error through every constructor.
func assert(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("evmasm: assertion failed: "+format, args...))
	}
}
