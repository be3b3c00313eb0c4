// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package interp runs loaded programs on the host: step budgets,
// cancellation, output flushing and source located errors.
package interp

import (
	"context"
	"log"

	"github.com/ezrec/bf/engine"
	"github.com/ezrec/bf/io"
)

const (
	CONTEXT_CHECK_STEPS = 1024 // Steps between context cancellation checks.
)

// Interpreter state. Engine + run limits.
type Interpreter struct {
	Verbose        bool // If set, enables verbose logging.
	MaxSteps       int  // Step budget for Run; 0 is unlimited.
	*engine.Engine      // Reference to the execution engine.
}

// New creates an interpreter for prog, reading from input.
// A nil input reads as an empty queue.
func New(prog *engine.Program, input io.Receiver) (it *Interpreter) {
	it = &Interpreter{
		Engine: engine.NewProgramEngine(prog, input),
	}

	return
}

// Location returns the source location of the current instruction.
func (it *Interpreter) Location() (loc engine.Location) {
	loc, _ = it.Program.Debug(it.Ip())
	return
}

// Tick performs a single instruction of the program.
func (it *Interpreter) Tick() (done bool, err error) {
	it.Engine.Verbose = it.Verbose

	ip := it.Ip()
	loc := it.Location()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: ip, Location: loc, Err: err}
		}
	}()

	done, err = it.Engine.Tick()
	return
}

// Run ticks the program until it completes, fails, exhausts MaxSteps or
// ctx is done. Output is flushed on every return.
func (it *Interpreter) Run(ctx context.Context) (err error) {
	defer func() {
		ferr := it.Flush()
		if err == nil {
			err = ferr
		}
		if it.Verbose {
			log.Printf("interp: %d steps, err=%v", it.Steps, err)
		}
	}()

	for {
		if it.MaxSteps > 0 && it.Steps >= it.MaxSteps {
			err = ErrStepLimit(it.MaxSteps)
			return
		}

		if it.Steps%CONTEXT_CHECK_STEPS == 0 {
			err = ctx.Err()
			if err != nil {
				return
			}
		}

		var done bool
		done, err = it.Tick()
		if err != nil || done {
			return
		}
	}
}

// Flush flushes the output, if it is buffered.
func (it *Interpreter) Flush() (err error) {
	if fl, ok := it.Output.(interface{ Flush() error }); ok {
		err = fl.Flush()
	}

	return
}
