// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/bf/internal"
)

var reExpand = regexp.MustCompile(`\$\([^\$]*\)`)

var _loader_defines = map[string]string{
	"CELL_BITS": "128",
	"MAX_CHAR":  fmt.Sprintf("%d", utf8.MaxRune),
}

// Loader reads program text into a Program.
//
// With Expand set, every $(expr) on a line is evaluated as a Starlark
// expression before filtering, and replaced by its string value:
//
//	$("+" * 72) .   ; emits 'H'
//
// Predefined names, and LINENO, are visible to the expressions.
type Loader struct {
	Verbose bool // If set, verbosely logs the loader actions.
	Expand  bool // If set, evaluates $(...) expressions.

	predefine map[string]string
}

// Predefine defines a new name or redefines an existing one.
func (ld *Loader) Predefine(name string, value string) {
	if ld.predefine == nil {
		ld.predefine = map[string]string{name: value}
	} else {
		ld.predefine[name] = value
	}
}

// Defines returns an iterator over the names visible to $(...)
// expressions. Predefines follow, and so override, the built in names.
func (ld *Loader) Defines() iter.Seq2[string, string] {
	return internal.Concat2(maps.All(_loader_defines), maps.All(ld.predefine))
}

// Parse reads all of input into a Program.
func (ld *Loader) Parse(input io.Reader) (prog *Program, err error) {
	reader := bufio.NewReader(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	prog = &Program{}

	for {
		raw, rerr := reader.ReadString('\n')
		if len(raw) == 0 && rerr != nil {
			if !errors.Is(rerr, io.EOF) {
				err = rerr
			}
			break
		}

		lineno += 1
		line = strings.TrimRight(raw, "\r\n")

		if ld.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		text := line
		if ld.Expand {
			text, err = ld.expandLine(line, lineno)
			if err != nil {
				return
			}
		}

		prog.appendLine(text, lineno)
	}

	if err != nil {
		return
	}

	if ld.Verbose {
		log.Printf("loaded %v symbols", prog.Len())
	}

	return
}

// expandLine replaces each $(expr) on line with its evaluation.
func (ld *Loader) expandLine(line string, lineno int) (expanded string, err error) {
	expanded = reExpand.ReplaceAllStringFunc(line, func(str string) string {
		if err != nil {
			return str
		}
		value, _err := ld.parenEval(str[2:len(str)-1], lineno)
		if _err != nil {
			err = _err
		}
		return value
	})

	return
}

// parenEval does compile-time $(...) evaluations
func (ld *Loader) parenEval(expr string, lineno int) (value string, err error) {
	thread := starlark.Thread{Name: "expand"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"LINENO": starlark.MakeInt(lineno),
	}
	for key, str := range ld.Defines() {
		if num, _err := strconv.Atoi(str); _err == nil {
			pred[key] = starlark.MakeInt(num)
		} else {
			pred[key] = starlark.String(str)
		}
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}

	switch rc := dict["rc"].(type) {
	case starlark.String:
		value = string(rc)
	case *starlark.List:
		var parts []string
		for n := range rc.Len() {
			part, ok := rc.Index(n).(starlark.String)
			if !ok {
				err = ErrParseExpression(expr)
				return
			}
			parts = append(parts, string(part))
		}
		value = strings.Join(parts, "")
	default:
		err = ErrParseExpression(expr)
		return
	}

	if ld.Verbose {
		log.Printf("$(%v) = %v", expr, value)
	}

	return
}

// String describes the loader configuration.
func (ld *Loader) String() string {
	return fmt.Sprintf("expand=%v defines=%v", ld.Expand, slices.Sorted(maps.Keys(ld.predefine)))
}
