package asm

import (
	"fmt"
	"io"
	"iter"

	"github.com/ezrec/insn20/insn"
)

// CODE_INDENT prefixes every line of generated VHDL.
const CODE_INDENT = "                "

// Opcode is an assembled line of source.
type Opcode struct {
	LineNo int       // Source line number, starting at 1.
	Text   string    // Normalized source text.
	Word   insn.Word // Encoded instruction.
}

// Program is the result of an assembly.
type Program struct {
	Opcodes []Opcode
	Skipped []error // *insn.ErrSyntax for each line that failed.
}

// Words iterates over the instruction words, indexed by their position in
// the program.
func (prog *Program) Words() iter.Seq2[int, insn.Word] {
	return func(yield func(index int, word insn.Word) bool) {
		for n, op := range prog.Opcodes {
			if !yield(n, op.Word) {
				return
			}
		}
	}
}

// WriteHex writes one hex word per line.
func (prog *Program) WriteHex(w io.Writer) (err error) {
	for _, word := range prog.Words() {
		_, err = fmt.Fprintf(w, "%s\n", word.Hex())
		if err != nil {
			return
		}
	}

	return
}

// WriteCode writes a VHDL instruction memory assignment for each opcode,
// addressed from start. Addresses count assembled opcodes only, so a skipped
// line does not leave a hole.
func (prog *Program) WriteCode(w io.Writer, start int, comment bool) (err error) {
	for n, op := range prog.Opcodes {
		if comment {
			_, err = fmt.Fprintf(w, "%s-- %s\n", CODE_INDENT, op.Text)
			if err != nil {
				return
			}
		}
		_, err = fmt.Fprintf(w, "%svar_insn_mem(%d) := X\"%s\";\n", CODE_INDENT, start+n, op.Word.Hex())
		if err != nil {
			return
		}
	}

	return
}
