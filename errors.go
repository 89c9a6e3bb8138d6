package soavec

import (
	"errors"
	"fmt"
)

var (
	// ErrUnevenLengths is returned by the FromColumnsN constructors when the
	// supplied per-field columns do not all share the same length. Nothing is
	// truncated on this path; the conversion has no effect.
	ErrUnevenLengths = errors.New("soavec: uneven column lengths")
)

func boundsMsg(i, n int) string {
	return fmt.Sprintf("soavec: index out of bounds: %d (len %d)", i, n)
}

func rangeMsg(a, b, n int) string {
	return fmt.Sprintf("soavec: range out of bounds: [%d:%d] (len %d)", a, b, n)
}
