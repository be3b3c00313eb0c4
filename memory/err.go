package memory

import (
	"errors"

	"github.com/ezrec/bf/translate"
)

var f = translate.From

var (
	ErrUnderflow = errors.New(f("pointer underflow"))
	ErrOverflow  = errors.New(f("pointer overflow"))
)

// ErrOutOfBounds is a direct indexed access outside of the memory.
type ErrOutOfBounds struct {
	Index  int
	Length int
}

func (err ErrOutOfBounds) Error() string {
	return f("index (%d) out of bounds (0..%d)", err.Index, err.Length)
}

func (err ErrOutOfBounds) Is(target error) (ok bool) {
	_, ok = target.(ErrOutOfBounds)
	return
}
