// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"maps"
	"os"
	"slices"

	"github.com/tebeka/atexit"

	"github.com/ezrec/insn20/repl"
)

func main() {
	var mode string

	flag.StringVar(&mode, "mode", "widen", "Tool to run: asm, create, narrow, or widen")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	tool, ok := repl.Tools[mode]
	if !ok {
		log.Fatalf("%v: Unknown mode '%v', expected one of %v", os.Args[0], mode, slices.Sorted(maps.Keys(repl.Tools)))
	}

	err := repl.Run(os.Stdin, os.Stdout, tool)
	if err != nil {
		atexit.Fatal(err)
	}

	atexit.Exit(0)
}
