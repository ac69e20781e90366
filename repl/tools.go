package repl

import (
	"io"

	"github.com/ezrec/insn20/adapt"
	"github.com/ezrec/insn20/insn"
)

const hexPrompt = "In hex:  "

// Widen converts 16-bit layout words to the 20-bit layout.
type Widen struct{}

func (Widen) Banner() string { return "" }
func (Widen) Prompt() string { return hexPrompt }

func (Widen) Eval(text string, out io.Writer) (err error) {
	word, err := adapt.Widen(text)
	if err != nil {
		return
	}

	return writeResult(out, word.Hex(), word.Binary())
}

// Narrow converts 20-bit layout words to the 16-bit layout.
type Narrow struct{}

func (Narrow) Banner() string { return "" }
func (Narrow) Prompt() string { return hexPrompt }

func (Narrow) Eval(text string, out io.Writer) (err error) {
	lw, losses, err := adapt.Narrow(text)
	if err != nil {
		return
	}

	for _, loss := range losses {
		_, err = fprintf(out, "WARNING! %v\n", loss)
		if err != nil {
			return
		}
	}

	return writeResult(out, lw.Hex(), lw.Binary())
}

// Create encodes four decimal fields, opcode first.
type Create struct{}

func (Create) Banner() string {
	return "Insert instruction using decimals (-16 - 31), in the following format:\n" +
		"\tFormat:  insn a1 a2 a3\n" +
		"\tExample: 26 2 12 -2\n"
}

func (Create) Prompt() string { return "Instruction: " }

func (Create) Eval(text string, out io.Writer) (err error) {
	values, err := insn.ParseFields(text)
	if err != nil {
		return
	}

	word, err := insn.EncodeFields(values)
	if err != nil {
		return
	}

	return writeResult(out, word.Hex(), word.Binary())
}

// Assemble encodes a single line of assembly.
type Assemble struct{}

func (Assemble) Banner() string {
	return "Insert instruction as a mnemonic and three decimals (-16 - 31):\n" +
		"\tExample: add 2 12 -2\n"
}

func (Assemble) Prompt() string { return "Instruction: " }

func (Assemble) Eval(text string, out io.Writer) (err error) {
	line, ok := insn.ParseLine(1, text)
	if !ok {
		return
	}

	in, err := line.Instruction()
	if err != nil {
		return
	}

	word, err := in.Encode()
	if err != nil {
		return
	}

	return writeResult(out, word.Hex(), word.Binary())
}

// writeResult prints a converted word.
func writeResult(out io.Writer, hex, bin string) (err error) {
	_, err = fprintf(out, "Out hex: %s\nOut bin: %s\n\n", hex, bin)
	return
}
