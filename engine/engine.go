// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package engine

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/bf/io"
	"github.com/ezrec/bf/memory"
)

// Condition selects which cell a ']' tests.
type Condition int

const (
	CONDITION_RECORDED = Condition(0) // Cell recorded when the loop was entered.
	CONDITION_CURRENT  = Condition(1) // Cell under the current tape pointer.
)

func (cond Condition) String() string {
	switch cond {
	case CONDITION_RECORDED:
		return "recorded"
	case CONDITION_CURRENT:
		return "current"
	}

	return fmt.Sprintf("Condition(%d)", int(cond))
}

// Engine is the execution state for a single program run.
type Engine struct {
	Verbose   bool      // Set to enable verbose logging.
	Condition Condition // Loop condition cell selection.

	Program *Program               // Loaded program.
	Code    *memory.Memory[Symbol] // Instruction store.
	Tape    *memory.Memory[Cell]   // Data tape.
	Input   io.Receiver            // Input characters.
	Output  io.Sender              // Output characters.
	Loops   Stack                  // Open loop markers.

	Steps int // Instructions dispatched.
}

// NewEngine creates an engine for code, reading from input.
// Output is discarded until Output is set.
func NewEngine(code string, input string) *Engine {
	return NewProgramEngine(ParseString(code), io.NewQueue(input))
}

// NewProgramEngine creates an engine for a loaded program.
func NewProgramEngine(prog *Program, input io.Receiver) (eng *Engine) {
	if input == nil {
		input = io.NewQueue("")
	}

	eng = &Engine{
		Program: prog,
		Code:    memory.NewFixed(prog.Symbols),
		Tape:    memory.NewExpanding(CellZero),
		Input:   input,
		Output:  io.NewSink(nil),
	}

	return
}

// Reset the engine to run the program again from the start.
// - Clears the tape and the loop stack.
// - Zeros the step counter.
// - Rewinds the input, if it supports rewinding.
func (eng *Engine) Reset() {
	if eng.Verbose {
		log.Printf("engine: reset")
	}

	eng.Code.SetPointer(0)
	eng.Tape = memory.NewExpanding(CellZero)
	eng.Loops.Reset()
	eng.Steps = 0

	if rw, ok := eng.Input.(interface{ Rewind() }); ok {
		rw.Rewind()
	}
}

// Ip returns the current instruction pointer.
func (eng *Engine) Ip() int {
	return eng.Code.Pointer()
}

// TapePosition returns the absolute position of the tape pointer.
// Position 0 is the initial cell; positions left of it are negative.
func (eng *Engine) TapePosition() int {
	return eng.Tape.Pointer() - eng.Tape.Origin()
}

// Cell returns the cell at an absolute tape position.
func (eng *Engine) Cell(position int) (Cell, error) {
	return eng.Tape.Get(position + eng.Tape.Origin())
}

// Execute runs the program until it runs past its last instruction, or an
// error occurs.
func (eng *Engine) Execute() (err error) {
	for {
		var done bool
		done, err = eng.Tick()
		if err != nil || done {
			return
		}
	}
}

// Tick executes a single instruction.
// done is true once the instruction pointer has run past the program.
func (eng *Engine) Tick() (done bool, err error) {
	if eng.Code.Len() == 0 {
		done = true
		return
	}

	sym, err := eng.Code.GetAtPointer()
	if err != nil {
		return
	}

	err = eng.Dispatch(sym)
	if err != nil {
		return
	}

	err = eng.Code.Next()
	if errors.Is(err, memory.ErrOverflow) {
		err = nil
		done = true
	}

	return
}

// Dispatch executes sym at the current instruction pointer.
// The instruction pointer is left on the instruction to advance from.
func (eng *Engine) Dispatch(sym Symbol) (err error) {
	if eng.Verbose {
		log.Printf("%04d: %v @%d", eng.Ip(), sym, eng.TapePosition())
	}

	eng.Steps++

	switch sym {
	case SYM_LEFT:
		err = eng.Tape.Prev()
	case SYM_RIGHT:
		err = eng.Tape.Next()
	case SYM_INC, SYM_DEC:
		err = eng.arith(sym)
	case SYM_OUTPUT:
		var cell Cell
		cell, err = eng.Tape.GetAtPointer()
		if err != nil {
			return
		}
		r, ok := cell.Rune()
		if !ok {
			err = ErrInvalidOutput(cell)
			return
		}
		err = eng.Output.Send(r)
	case SYM_INPUT:
		// An exhausted input reads as 0.
		r, _ := eng.Input.Receive()
		err = eng.Tape.SetAtPointer(CellOf(r))
	case SYM_LOOP:
		if eng.Loops.Full() {
			err = ErrLoopDepth(eng.Loops.Limit)
			return
		}
		eng.Loops.Push(Marker{Ip: eng.Ip(), Tape: eng.TapePosition()})
	case SYM_END:
		err = eng.loopEnd()
	default:
		err = ErrInvalidInstruction(sym)
	}

	return
}

// arith does a checked increment or decrement of the current cell.
func (eng *Engine) arith(sym Symbol) (err error) {
	cell, err := eng.Tape.GetAtPointer()
	if err != nil {
		return
	}

	var ok bool
	if sym == SYM_INC {
		cell, ok = cell.Inc()
		if !ok {
			err = ErrArithmeticOverflow
		}
	} else {
		cell, ok = cell.Dec()
		if !ok {
			err = ErrArithmeticUnderflow
		}
	}
	if err != nil {
		err = &ErrArithmetic{Symbol: sym, Position: eng.TapePosition(), Err: err}
		return
	}

	return eng.Tape.SetAtPointer(cell)
}

// loopEnd jumps back to the innermost open loop while its condition cell is
// positive, and closes the loop otherwise.
func (eng *Engine) loopEnd() (err error) {
	marker, ok := eng.Loops.Peek()
	if !ok {
		err = ErrUnbalancedLoop(eng.Ip())
		return
	}

	position := marker.Tape
	if eng.Condition == CONDITION_CURRENT {
		position = eng.TapePosition()
	}

	cell, err := eng.Cell(position)
	if err != nil {
		return
	}

	if cell.Positive() {
		eng.Code.SetPointer(marker.Ip)
	} else {
		eng.Loops.Pop()
	}

	return
}

// String returns the current engine state as a string.
func (eng *Engine) String() (text string) {
	regs := []string{"ip", "symbol", "tape", "cell", "loops", "steps"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "ip":
			strval = fmt.Sprintf("%d/%d", eng.Ip(), eng.Code.Len())
		case "symbol":
			strval = "-"
			if sym, err := eng.Code.GetAtPointer(); err == nil {
				strval = sym.String()
			}
		case "tape":
			strval = fmt.Sprintf("%d (%d cells)", eng.TapePosition(), eng.Tape.Len())
		case "cell":
			strval = "-"
			if cell, err := eng.Tape.GetAtPointer(); err == nil {
				strval = cell.String()
			}
		case "loops":
			strval = fmt.Sprintf("%d", eng.Loops.Depth())
			if marker, ok := eng.Loops.Peek(); ok {
				strval += fmt.Sprintf(" [%d@%d]", marker.Ip, marker.Tape)
			}
		case "steps":
			strval = fmt.Sprintf("%d", eng.Steps)
		}
		text += fmt.Sprintf("% 6s: %v\n", reg, strval)
	}

	return
}
