// Package memory provides the pointer-addressed cell storage shared by the
// data tape and the instruction store.
//
// A Memory is either expanding, where moving the pointer past either end
// grows the backing cells with copies of a default value, or fixed, where
// moving past either end is an addressing failure. For the instruction
// store, ErrOverflow is the normal end-of-program signal.
package memory

import (
	"iter"
	"slices"
)

// Memory is a singly-indexed sequence of cells with a current pointer.
type Memory[T any] struct {
	data      []T
	pointer   int
	origin    int
	expanding bool
	def       T
}

// NewExpanding creates an expanding memory of a single def cell.
func NewExpanding[T any](def T) (mem *Memory[T]) {
	mem = &Memory[T]{
		data:      []T{def},
		expanding: true,
		def:       def,
	}

	return
}

// NewFixed creates a fixed memory over values.
// An empty memory is allowed, but any read from it fails.
func NewFixed[T any](values []T) (mem *Memory[T]) {
	mem = &Memory[T]{
		data: values,
	}

	return
}

// Expanding returns true if the memory grows on demand.
func (mem *Memory[T]) Expanding() bool {
	return mem.expanding
}

// Len returns the number of cells.
func (mem *Memory[T]) Len() int {
	return len(mem.data)
}

// Origin returns the number of cells prepended since creation.
// Index Origin() is the cell that was at index 0 when the memory was created.
func (mem *Memory[T]) Origin() int {
	return mem.origin
}

// Pointer returns the current pointer.
func (mem *Memory[T]) Pointer() int {
	return mem.pointer
}

// SetPointer overwrites the pointer. The caller must supply an index that
// was previously valid.
func (mem *Memory[T]) SetPointer(pointer int) {
	mem.pointer = pointer
}

// MoveBy moves the pointer by offset cells.
func (mem *Memory[T]) MoveBy(offset int) (err error) {
	pointer := mem.pointer + offset

	switch {
	case pointer < 0:
		if !mem.expanding {
			err = ErrUnderflow
			return
		}
		mem.data = slices.Insert(mem.data, 0, mem.fill(-pointer)...)
		mem.origin += -pointer
		mem.pointer = 0
	case pointer >= len(mem.data):
		if !mem.expanding {
			err = ErrOverflow
			return
		}
		mem.data = append(mem.data, mem.fill(pointer-len(mem.data)+1)...)
		mem.pointer = pointer
	default:
		mem.pointer = pointer
	}

	return
}

// Next moves the pointer one cell up.
func (mem *Memory[T]) Next() error {
	return mem.MoveBy(1)
}

// Prev moves the pointer one cell down.
func (mem *Memory[T]) Prev() error {
	return mem.MoveBy(-1)
}

// Get returns the cell at index.
func (mem *Memory[T]) Get(index int) (value T, err error) {
	if index < 0 || index >= len(mem.data) {
		err = ErrOutOfBounds{Index: index, Length: len(mem.data)}
		return
	}

	value = mem.data[index]
	return
}

// Set replaces the cell at index.
func (mem *Memory[T]) Set(index int, value T) (err error) {
	if index < 0 || index >= len(mem.data) {
		err = ErrOutOfBounds{Index: index, Length: len(mem.data)}
		return
	}

	mem.data[index] = value
	return
}

// GetAtPointer returns the cell under the pointer.
func (mem *Memory[T]) GetAtPointer() (T, error) {
	return mem.Get(mem.pointer)
}

// SetAtPointer replaces the cell under the pointer.
func (mem *Memory[T]) SetAtPointer(value T) error {
	return mem.Set(mem.pointer, value)
}

// Values returns an iterator over the index and value of every cell.
func (mem *Memory[T]) Values() iter.Seq2[int, T] {
	return slices.All(mem.data)
}

func (mem *Memory[T]) fill(count int) (cells []T) {
	cells = make([]T, count)
	for n := range cells {
		cells[n] = mem.def
	}

	return
}
