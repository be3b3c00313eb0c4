package interp

import (
	"github.com/ezrec/bf/engine"
	"github.com/ezrec/bf/translate"
)

var f = translate.From

// ErrRuntime indicates the source location of a runtime error.
type ErrRuntime struct {
	Ip       int
	Location engine.Location
	Err      error
}

func (err *ErrRuntime) Error() string {
	return f("%v (instruction %d): %v", err.Location.String(), err.Ip, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrStepLimit is a run stopped after its step budget was spent.
type ErrStepLimit int

func (es ErrStepLimit) Error() string {
	return f("step limit of %d reached", int(es))
}

func (es ErrStepLimit) Is(err error) (ok bool) {
	_, ok = err.(ErrStepLimit)
	return
}
