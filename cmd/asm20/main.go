// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/tebeka/atexit"

	"github.com/ezrec/insn20/asm"
)

// run assembles a source file per the command line, and returns the process
// exit code.
func run(name string, args []string, stderr io.Writer) int {
	var verbose bool
	var noComment bool

	logger := log.New(stderr, "", log.LstdFlags)

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVar(&verbose, "v", false, "Verbose mode")
	flags.BoolVar(&noComment, "no-comment", false, "Omit source comments when writing VHDL")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %v [options] <source> <destination> [start_index]\n", name)
		flags.PrintDefaults()
	}

	err := flags.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 1
	}

	args = flags.Args()
	if len(args) > 3 {
		logger.Printf("%v: Unknown arguments: %v", name, args[3:])
		return 1
	}

	if len(args) < 1 {
		logger.Print("Missing source file path.")
	}
	if len(args) < 2 {
		logger.Print("Missing destination file path.")
		flags.Usage()
		return 1
	}

	source, destination := args[0], args[1]

	code := false
	var start int
	if len(args) > 2 {
		start, err = strconv.Atoi(args[2])
		if err != nil {
			logger.Printf("Illegal start_index '%v'. Please enter a positive number.", args[2])
			flags.Usage()
			return 1
		}
		code = true
	}

	inf, err := os.Open(source)
	if err != nil {
		logger.Printf("%v: %v", source, err)
		return 1
	}
	defer inf.Close()

	assembler := &asm.Assembler{Verbose: verbose}
	prog, err := assembler.Parse(inf)
	if err != nil {
		logger.Printf("%v: %v", source, err)
		return 1
	}

	if verbose && len(prog.Skipped) != 0 {
		logger.Printf("%v: skipped %d of %d instructions", source, len(prog.Skipped), len(prog.Skipped)+len(prog.Opcodes))
	}

	ouf, err := os.Create(destination)
	if err != nil {
		logger.Printf("%v: %v", destination, err)
		return 1
	}

	if code {
		err = prog.WriteCode(ouf, start, !noComment)
	} else {
		err = prog.WriteHex(ouf)
	}

	// Close on the write error path too, but report the first error.
	close_err := ouf.Close()
	if err == nil {
		err = close_err
	}
	if err != nil {
		logger.Printf("%v: %v", destination, err)
		return 1
	}

	return 0
}

func main() {
	atexit.Exit(run(os.Args[0], os.Args[1:], os.Stderr))
}
