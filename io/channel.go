// Package io provides the character channels attached to the interpreter.
// It includes the input queue (Queue), the output sink (Sink), and decoding
// of program and input text from legacy encodings.
package io

// Receiver is a source of input characters.
type Receiver interface {
	// Receive removes and returns the next character.
	// ok is false when no characters remain.
	Receive() (r rune, ok bool)
}

// Sender is a destination for output characters.
type Sender interface {
	// Send emits a single character.
	Send(r rune) error
}
