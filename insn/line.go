package insn

import (
	"strings"
)

// Line is a single non-blank line of source text.
type Line struct {
	LineNo int    // Source line number, starting at 1.
	Text   string // Trimmed, lower case, text.
}

// splitWords splits text at runs of white space.
func splitWords(text string) []string {
	return strings.Fields(text)
}

// ParseLine normalizes raw source text. Blank lines are not instructions,
// and return ok as false.
func ParseLine(lineno int, raw string) (line Line, ok bool) {
	text := strings.ToLower(strings.TrimSpace(raw))
	if len(text) == 0 {
		return
	}

	line = Line{LineNo: lineno, Text: text}
	ok = true
	return
}

// Words returns the whitespace separated tokens of the line.
func (line Line) Words() []string {
	return splitWords(line.Text)
}

// Instruction parses the line as a mnemonic and three operands.
func (line Line) Instruction() (in Instruction, err error) {
	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
		}
	}()

	words := line.Words()
	if len(words) != FIELD_COUNT {
		err = ErrTokenCount
		return
	}

	for n, word := range words[1:] {
		in.Operands[n], err = parseOperand(word)
		if err != nil {
			return
		}
	}

	op, ok := Lookup(words[0])
	if !ok {
		err = ErrParseMnemonic(words[0])
		return
	}
	in.Opcode = op

	return
}

// Encode parses and encodes the line.
func (line Line) Encode() (word Word, err error) {
	in, err := line.Instruction()
	if err != nil {
		return
	}

	word, err = in.Encode()
	if err != nil {
		err = &ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
	}

	return
}

func (line Line) String() string {
	return f("  Line %3d:\t%v", line.LineNo, line.Text)
}
