package io

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// Sink writes output characters, UTF-8 encoded, to an io.Writer.
// A nil Output discards everything sent.
type Sink struct {
	Output io.Writer

	count int
	buf   [utf8.UTFMax]byte
}

var _ Sender = (*Sink)(nil)

// NewSink creates a sink. Writers other than in-memory buffers are wrapped
// in a bufio.Writer, so Flush must be called once output is complete.
func NewSink(w io.Writer) (sink *Sink) {
	// in memory buffers, as implemented by bytes.Buffer and
	// strings.Builder, do not need buffering
	type buffer interface {
		io.Writer
		Len() int
		Reset()
	}

	switch w.(type) {
	case nil, buffer, *bufio.Writer:
	default:
		if w != io.Discard {
			w = bufio.NewWriter(w)
		}
	}

	sink = &Sink{Output: w}
	return
}

// Send writes one character. Invalid characters are rejected with
// ErrInvalidRune rather than replaced.
func (sink *Sink) Send(r rune) (err error) {
	if !utf8.ValidRune(r) {
		err = ErrInvalidRune(r)
		return
	}

	sink.count++

	if sink.Output == nil {
		return
	}

	n := utf8.EncodeRune(sink.buf[:], r)
	_, err = sink.Output.Write(sink.buf[:n])
	return
}

// Count returns the number of characters sent.
func (sink *Sink) Count() int {
	return sink.count
}

// Flush flushes a buffered Output.
func (sink *Sink) Flush() (err error) {
	if fl, ok := sink.Output.(interface{ Flush() error }); ok {
		err = fl.Flush()
	}

	return
}
