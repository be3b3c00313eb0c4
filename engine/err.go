package engine

import (
	"errors"

	"github.com/ezrec/bf/translate"
)

var f = translate.From

var (
	// Cell arithmetic errors
	ErrArithmeticOverflow  = errors.New(f("arithmetic overflow"))
	ErrArithmeticUnderflow = errors.New(f("arithmetic underflow"))
)

// ErrArithmetic is a checked increment or decrement that left the cell range.
type ErrArithmetic struct {
	Symbol   Symbol
	Position int
	Err      error
}

func (err *ErrArithmetic) Error() string {
	return f("'%v' at tape position %d: %v", err.Symbol.String(), err.Position, err.Err)
}

func (err *ErrArithmetic) Unwrap() error {
	return err.Err
}

// ErrInvalidOutput is a cell value that is not a Unicode scalar value.
type ErrInvalidOutput Cell

func (eo ErrInvalidOutput) Error() string {
	return f("cell value %v is not a valid character", Cell(eo).String())
}

func (eo ErrInvalidOutput) Is(err error) (ok bool) {
	_, ok = err.(ErrInvalidOutput)
	return
}

// ErrUnbalancedLoop is a ']' at an instruction position with no open loop.
type ErrUnbalancedLoop int

func (eu ErrUnbalancedLoop) Error() string {
	return f("unbalanced ']' at instruction %d", int(eu))
}

func (eu ErrUnbalancedLoop) Is(err error) (ok bool) {
	_, ok = err.(ErrUnbalancedLoop)
	return
}

// ErrInvalidInstruction is a symbol the engine cannot dispatch.
type ErrInvalidInstruction Symbol

func (ei ErrInvalidInstruction) Error() string {
	return f("invalid instruction '%v'", Symbol(ei).String())
}

// ErrLoopDepth is an open loop past the configured nesting limit.
type ErrLoopDepth int

func (el ErrLoopDepth) Error() string {
	return f("loops nested deeper than %d", int(el))
}

// ErrSyntax locates a program loading error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrParseExpression is a $(...) expression that did not evaluate to text.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
