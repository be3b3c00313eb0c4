package io

import (
	"iter"
	"slices"
)

// Queue is a FIFO of input characters, consumed front to back.
type Queue struct {
	Data []rune

	readIndex int
}

var _ Receiver = (*Queue)(nil)

// NewQueue creates a queue over the characters of text.
func NewQueue(text string) *Queue {
	return &Queue{Data: []rune(text)}
}

// Rewind makes all characters available again.
func (q *Queue) Rewind() {
	q.readIndex = 0
}

// Receive removes the front character.
func (q *Queue) Receive() (r rune, ok bool) {
	if q.readIndex >= len(q.Data) {
		return
	}

	r = q.Data[q.readIndex]
	q.readIndex++
	ok = true
	return
}

// Len returns the number of characters not yet received.
func (q *Queue) Len() int {
	return len(q.Data) - q.readIndex
}

// Remaining returns an iterator over the characters not yet received,
// without consuming them.
func (q *Queue) Remaining() iter.Seq[rune] {
	return slices.Values(q.Data[q.readIndex:])
}
