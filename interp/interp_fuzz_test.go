package interp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/bf/engine"
	"github.com/ezrec/bf/io"
)

func FuzzInterpreter(f *testing.F) {
	for _, code := range []string{"", "+.", ",[.,]", "+[>+<-]", "<<<+>>>-", "[]]", "+[+]", "+[<]"} {
		f.Add(code, "seed", false)
		f.Add(code, "", true)
	}

	f.Fuzz(func(t *testing.T, code string, input string, current bool) {
		assert := assert.New(t)

		prog := engine.ParseString(code)
		it := New(prog, io.NewQueue(input))
		it.MaxSteps = 4096
		if current {
			it.Condition = engine.CONDITION_CURRENT
		}

		sink := io.NewSink(nil)
		it.Output = sink

		err := it.Run(context.Background())
		if err != nil {
			var rt *ErrRuntime
			if !errors.As(err, &rt) {
				assert.ErrorIs(err, ErrStepLimit(0))
			}
		}

		assert.LessOrEqual(it.Steps, it.MaxSteps)
		assert.LessOrEqual(sink.Count(), it.Steps)
		assert.LessOrEqual(it.Loops.Depth(), prog.Len())
	})
}
