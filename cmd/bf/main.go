// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	goio "io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/ezrec/bf/engine"
	"github.com/ezrec/bf/interp"
	"github.com/ezrec/bf/io"
)

const (
	EXIT_OK    = 0 // Program ran to completion.
	EXIT_USAGE = 1 // Bad arguments, or unreadable files.
	EXIT_RUN   = 2 // Program failed during execution.
)

var errDefine = errors.New("expected name=value")

// defines collects repeated -D name=value flags.
type defines map[string]string

func (defs defines) String() string {
	var parts []string
	for name, value := range defs {
		parts = append(parts, name+"="+value)
	}
	return strings.Join(parts, ",")
}

func (defs defines) Set(text string) error {
	name, value, _ := strings.Cut(text, "=")
	if len(name) == 0 {
		return errDefine
	}
	defs[name] = value
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// readText reads and decodes a file; "-" is stdin.
func readText(path string, encoding string, stdin goio.Reader) (text string, err error) {
	var data []byte
	if path == "-" {
		data, err = goio.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return
	}

	text, err = io.Decode(data, encoding)
	return
}

func run(args []string, stdin goio.Reader, stdout goio.Writer) int {
	var inputFile string
	var encoding string
	var expand bool
	var current bool
	var steps int
	var timeout time.Duration
	var verbose bool
	predefine := defines{}

	flags := flag.NewFlagSet("bf", flag.ContinueOnError)
	flags.StringVar(&inputFile, "i", "", "Input text file ('-' for stdin)")
	flags.StringVar(&encoding, "encoding", "", "Text encoding of the program and input files")
	flags.BoolVar(&expand, "x", false, "Expand $(...) expressions in the program")
	flags.Var(predefine, "D", "Predefine name=value for $(...) expressions")
	flags.BoolVar(&current, "current", false, "Loops test the current cell, not the recorded one")
	flags.IntVar(&steps, "steps", 0, "Step limit (0 is unlimited)")
	flags.DurationVar(&timeout, "timeout", 0, "Execution time limit (0 is unlimited)")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")

	if err := flags.Parse(args); err != nil {
		return EXIT_USAGE
	}

	if flags.NArg() < 1 || flags.NArg() > 2 {
		log.Printf("usage: bf [flags] program.bf [input]")
		flags.PrintDefaults()
		return EXIT_USAGE
	}

	if flags.NArg() == 2 && len(inputFile) != 0 {
		log.Printf("bf: -i and an input argument are mutually exclusive")
		return EXIT_USAGE
	}

	path := flags.Arg(0)
	source, err := readText(path, encoding, stdin)
	if err != nil {
		log.Printf("%v: %v", path, err)
		return EXIT_USAGE
	}

	ld := &engine.Loader{Verbose: verbose, Expand: expand}
	for name, value := range predefine {
		ld.Predefine(name, value)
	}

	prog, err := ld.Parse(strings.NewReader(source))
	if err != nil {
		log.Printf("%v: %v", path, err)
		return EXIT_USAGE
	}

	input := flags.Arg(1)
	if len(inputFile) != 0 {
		input, err = readText(inputFile, encoding, stdin)
		if err != nil {
			log.Printf("%v: %v", inputFile, err)
			return EXIT_USAGE
		}
	}

	it := interp.New(prog, io.NewQueue(input))
	it.Verbose = verbose
	it.MaxSteps = steps
	it.Output = io.NewSink(stdout)
	if current {
		it.Condition = engine.CONDITION_CURRENT
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	err = it.Run(ctx)
	if err != nil {
		log.Printf("%v: %v", path, err)
		if verbose {
			log.Printf("state:\n%v", it.Engine.String())
		}
		return EXIT_RUN
	}

	return EXIT_OK
}
