// Package engine implements the execution engine for the eight-command tape
// language.
//
// The engine consists of a fixed instruction store holding the filtered
// program symbols, an expanding data tape of 128-bit cells, a FIFO input
// queue, an output sink, and a stack of loop markers. Each marker records
// the position of an open '[' together with the tape position that was
// current when it was pushed; the matching ']' re-reads that cell to decide
// whether to jump back.
//
// The loader filters program text down to the command symbols, optionally
// expanding compile-time $(...) Starlark expressions first.
package engine
