package insn

import (
	"strconv"
	"strings"

	"github.com/ezrec/insn20/field"
)

const (
	FIELD_WIDTH = 5                         // Bits per field.
	FIELD_COUNT = 4                         // Opcode and three operands.
	WORD_WIDTH  = FIELD_WIDTH * FIELD_COUNT // Bits per word.
	WORD_MASK   = (1 << WORD_WIDTH) - 1
	HEX_DIGITS  = WORD_WIDTH / 4
)

// Word is an encoded 20-bit instruction.
type Word uint32

// ParseWord parses a hex string, with an optional 0x prefix, into a Word.
func ParseWord(text string) (word Word, err error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(strings.TrimPrefix(text, "0x"), "0X")
	value, err := strconv.ParseUint(text, 16, WORD_WIDTH)
	if err != nil {
		err = ErrHexInvalid
		return
	}

	word = Word(value)
	return
}

// Field returns field n, where 0 is the opcode. An n outside of
// 0..FIELD_COUNT-1 returns an empty field.
func (word Word) Field(n int) field.Field {
	if n < 0 || n >= FIELD_COUNT {
		return field.Field{}
	}

	shift := (FIELD_COUNT - 1 - n) * FIELD_WIDTH
	return field.Field{
		Bits:  (uint32(word) >> shift) & ((1 << FIELD_WIDTH) - 1),
		Width: FIELD_WIDTH,
	}
}

// Fields returns all fields, opcode first.
func (word Word) Fields() (fields [FIELD_COUNT]field.Field) {
	for n := range fields {
		fields[n] = word.Field(n)
	}
	return
}

// Hex returns the word as 5 lower case, zero padded, hex digits.
func (word Word) Hex() string {
	hex := strconv.FormatUint(uint64(word)&WORD_MASK, 16)
	return strings.Repeat("0", HEX_DIGITS-len(hex)) + hex
}

// Binary returns the word as four space separated groups of 5 bits.
func (word Word) Binary() string {
	groups := make([]string, 0, FIELD_COUNT)
	for _, fld := range word.Fields() {
		groups = append(groups, fld.String())
	}
	return strings.Join(groups, " ")
}

func (word Word) String() string {
	return word.Hex()
}
