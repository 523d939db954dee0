package enforce

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

func init() {
	checkCompiler()
}

// InvariantViolation is the panic value raised when a solver assertion fails.
// It indicates a bug (or misuse of raw indices), never bad input data.
type InvariantViolation struct {
	Msg string
	Err error
}

func (iv InvariantViolation) Error() string {
	if iv.Err != nil {
		return "invariant violation: " + iv.Msg + ": " + iv.Err.Error()
	}
	return "invariant violation: " + iv.Msg
}

func (iv InvariantViolation) Unwrap() error {
	return iv.Err
}

func fail(err error, args []interface{}) {
	iv := InvariantViolation{Msg: fmt.Sprint(args...), Err: err}
	log.Error().Err(err).Msg("ENFORCE: " + iv.Msg)
	panic(iv)
}

// ENFORCE helper to halt on a broken invariant.
func ENFORCE(query interface{}, args ...interface{}) {
	switch t := query.(type) {
	case bool:
		if !t {
			fail(nil, args)
		}
	case error:
		if t != nil {
			fail(t, args)
		}
	case string:
		fail(nil, append([]interface{}{t, " "}, args...))
	case nil:
		// Allow nil to pass since we sometimes do enforce.ENFORCE(err) to ensure there is no error
	default:
		fail(nil, append([]interface{}{"incorrect usage of enforce with type ", fmt.Sprintf("%T", t), " "}, args...))
	}
}

// InRange halts when idx is not a valid index for a collection of length n.
func InRange(idx uint32, n int, what string) {
	if int(idx) >= n {
		fail(nil, []interface{}{what, " index ", idx, " out of range [0, ", n, ")"})
	}
}

// checkCompiler Enforces a 64bit machine due to assumptions about sizeof(int).
func checkCompiler() {
	myint := int(math.MaxInt64) // Shouldn't compile on a 32 bit system.
	myint64 := int64(math.MaxInt64)
	ENFORCE(uint64(myint) == uint64(myint64), "Must be on 64 bit system.")
}
