package io

import (
	"github.com/ezrec/bf/translate"
)

var f = translate.From

// ErrInvalidRune is a character that is not a Unicode scalar value.
type ErrInvalidRune rune

func (err ErrInvalidRune) Error() string {
	return f("invalid character U+%04X", int32(err))
}

// ErrEncoding is an unknown text encoding name.
type ErrEncoding string

func (err ErrEncoding) Error() string {
	return f("unknown encoding '%v'", string(err))
}

// ErrInvalidText is text that could not be decoded.
type ErrInvalidText string

func (err ErrInvalidText) Error() string {
	return f("text is not valid %v", string(err))
}
