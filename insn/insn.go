// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package insn

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ezrec/insn20/field"
)

const (
	FIELD_MIN = -16 // Smallest encodable field value.
	FIELD_MAX = 31  // Largest encodable field value.
)

// Instruction is a decoded instruction: an opcode and three operands.
type Instruction struct {
	Opcode   Opcode
	Operands [3]int
}

// Fields returns the instruction as four field values, opcode first.
func (in Instruction) Fields() [FIELD_COUNT]int {
	return [FIELD_COUNT]int{int(in.Opcode), in.Operands[0], in.Operands[1], in.Operands[2]}
}

// Encode packs the instruction into a Word.
func (in Instruction) Encode() (word Word, err error) {
	return EncodeFields(in.Fields())
}

func (in Instruction) String() string {
	return fmt.Sprintf("%v %d %d %d", in.Opcode, in.Operands[0], in.Operands[1], in.Operands[2])
}

// Encode looks up the mnemonic, and packs it with its operands into a Word.
func Encode(mnemonic string, op1, op2, op3 int) (word Word, err error) {
	op, ok := Lookup(mnemonic)
	if !ok {
		err = ErrParseMnemonic(mnemonic)
		return
	}

	return Instruction{Opcode: op, Operands: [3]int{op1, op2, op3}}.Encode()
}

// EncodeFields packs four raw field values, opcode first, into a Word.
// The opcode is not checked against the opcode table.
func EncodeFields(values [FIELD_COUNT]int) (word Word, err error) {
	for n, value := range values {
		if value < FIELD_MIN || value > FIELD_MAX {
			err = &ErrField{Index: n, Err: &field.ErrOutOfRange{Value: value, Width: FIELD_WIDTH}}
			word = 0
			return
		}

		var fld field.Field
		fld, err = field.Encode(value, FIELD_WIDTH)
		if err != nil {
			err = &ErrField{Index: n, Err: err}
			word = 0
			return
		}
		word = (word << FIELD_WIDTH) | Word(fld.Bits)
	}

	return
}

// Decode unpacks a Word. Operands are read as two's complement, so operands
// encoded from 16..=31 decode as negative.
func Decode(word Word) (in Instruction, err error) {
	fields := word.Fields()

	in.Opcode = Opcode(field.Decode(fields[0]))
	for n := range in.Operands {
		in.Operands[n] = field.Decode(fields[n+1])
	}

	if !in.Opcode.Valid() {
		err = ErrOpcodeUnknown
	}

	return
}

// parseOperand converts one operand token to an integer.
func parseOperand(word string) (value int, err error) {
	value, err = strconv.Atoi(word)
	if err == nil {
		return
	}

	if errors.Is(err, strconv.ErrRange) {
		// An integer, just too large for any field.
		err = ErrFieldRange
		return
	}

	err = ErrParseNumber(word)
	return
}

// ParseFields parses four whitespace separated decimals, opcode first.
func ParseFields(text string) (values [FIELD_COUNT]int, err error) {
	words := splitWords(text)
	if len(words) != FIELD_COUNT {
		err = ErrTokenCount
		return
	}

	for n, word := range words {
		values[n], err = parseOperand(word)
		if err != nil {
			return
		}
	}

	return
}
