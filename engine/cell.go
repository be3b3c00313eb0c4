package engine

import (
	"unicode"
	"unicode/utf8"

	"lukechampine.com/uint128"
)

// Cell is a 128-bit tape cell.
// Arithmetic is checked: there is no wraparound at either end of the range.
type Cell uint128.Uint128

var (
	CellZero = Cell(uint128.Zero) // Initial value of every tape cell.
	CellMax  = Cell(uint128.Max)  // Largest representable cell value.
)

// CellOf returns the cell holding the code point of r.
func CellOf(r rune) Cell {
	if r < 0 {
		return CellZero
	}

	return Cell(uint128.From64(uint64(r)))
}

// Inc returns c+1, or false if that would overflow.
func (c Cell) Inc() (Cell, bool) {
	u := uint128.Uint128(c)
	if u.Equals(uint128.Max) {
		return c, false
	}

	return Cell(u.Add64(1)), true
}

// Dec returns c-1, or false if that would underflow.
func (c Cell) Dec() (Cell, bool) {
	u := uint128.Uint128(c)
	if u.IsZero() {
		return c, false
	}

	return Cell(u.Sub64(1)), true
}

// Positive returns true if the cell is greater than zero.
func (c Cell) Positive() bool {
	return !uint128.Uint128(c).IsZero()
}

// Rune returns the character for the cell, or false if the cell is not a
// Unicode scalar value (too large, or a surrogate).
func (c Cell) Rune() (r rune, ok bool) {
	u := uint128.Uint128(c)
	if u.Hi != 0 || u.Lo > unicode.MaxRune {
		return
	}

	r = rune(u.Lo)
	ok = utf8.ValidRune(r)
	return
}

func (c Cell) String() string {
	return uint128.Uint128(c).String()
}
