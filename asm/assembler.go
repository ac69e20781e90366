// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package asm assembles source text, one instruction per line, into 20-bit
// instruction words.
//
// There are no labels, macros, or directives. Each line is independent, and
// a line that fails to assemble is reported and skipped.
package asm

import (
	"io"
	"log"

	"github.com/ezrec/insn20/insn"
	"github.com/ezrec/insn20/internal"
)

// Assembler is a line at a time assembler for the 20-bit instruction set.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
}

// Parse assembles an input stream into a Program. Lines that fail to
// assemble are logged, collected in Program.Skipped, and do not stop the
// assembly. Only a read error on the input is returned.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := internal.NewScanner(input)

	prog = &Program{}
	for lineno, text := range internal.Lines(scanner) {
		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line, ok := insn.ParseLine(lineno, text)
		if !ok {
			continue
		}

		word, line_err := line.Encode()
		if line_err != nil {
			log.Printf("ERROR! %v", line_err)
			prog.Skipped = append(prog.Skipped, line_err)
			continue
		}

		prog.Opcodes = append(prog.Opcodes, Opcode{LineNo: lineno, Text: line.Text, Word: word})
	}

	err = scanner.Err()
	return
}
