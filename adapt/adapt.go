// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package adapt migrates instruction words between the legacy 16-bit layout
// (four 4-bit fields) and the 20-bit layout (four 5-bit fields).
//
// Neither direction consults the opcode table. Widening inserts a zero bit
// at the top of every field, and is lossless. Narrowing removes one bit per
// field, and only loses data when a removed bit was set.
package adapt

import (
	"math/bits"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/insn20/field"
	"github.com/ezrec/insn20/insn"
)

const (
	LEGACY_FIELD_WIDTH = 4
	LEGACY_WIDTH       = LEGACY_FIELD_WIDTH * insn.FIELD_COUNT
	LEGACY_HEX_DIGITS  = LEGACY_WIDTH / 4
)

// Legacy is an instruction word in the 16-bit layout.
type Legacy uint16

// Hex returns the word as 4 lower case, zero padded, hex digits.
func (lw Legacy) Hex() string {
	hex := strconv.FormatUint(uint64(lw), 16)
	return strings.Repeat("0", LEGACY_HEX_DIGITS-len(hex)) + hex
}

// Binary returns the word as four space separated groups of 4 bits.
func (lw Legacy) Binary() string {
	text := field.Field{Bits: uint32(lw), Width: LEGACY_WIDTH}.String()
	groups := make([]string, 0, insn.FIELD_COUNT)
	for n := range insn.FIELD_COUNT {
		groups = append(groups, text[n*LEGACY_FIELD_WIDTH:(n+1)*LEGACY_FIELD_WIDTH])
	}
	return strings.Join(groups, " ")
}

func (lw Legacy) String() string {
	return lw.Hex()
}

// parseHex parses text, with an optional 0x prefix, as an unsigned value no
// wider than width bits.
func parseHex(text string, width int) (value uint64, err error) {
	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimPrefix(strings.TrimPrefix(trimmed, "0x"), "0X")
	value, err = strconv.ParseUint(trimmed, 16, 64)
	if err != nil {
		err = ErrParseHex(text)
		return
	}

	if bits.Len64(value) > width {
		err = ErrHexWidth
		return
	}

	return
}

// binary returns value as a list of '0' and '1' characters, width long.
func binary(value uint64, width int) []byte {
	return []byte(field.Field{Bits: uint32(value), Width: width}.String())
}

// ParseLegacy parses a 16-bit layout hex word.
func ParseLegacy(text string) (lw Legacy, err error) {
	value, err := parseHex(text, LEGACY_WIDTH)
	if err != nil {
		return
	}

	lw = Legacy(value)
	return
}

// Widen converts a 16-bit layout hex word to the 20-bit layout, by inserting
// a '0' bit before each 4-bit field.
func Widen(text string) (word insn.Word, err error) {
	value, err := parseHex(text, LEGACY_WIDTH)
	if err != nil {
		return
	}

	list := binary(value, LEGACY_WIDTH)
	for n := range insn.FIELD_COUNT {
		list = slices.Insert(list, n*insn.FIELD_WIDTH, '0')
	}

	fld, err := field.Parse(string(list))
	if err != nil {
		return
	}

	word = insn.Word(fld.Bits)
	return
}

// Narrow converts a 20-bit layout hex word to the 16-bit layout.
//
// Bits are removed from the list one at a time, at index 4*n for the n'th
// removal, and the list shrinks after each. The removed indexes on the
// original word are therefore 0, 5, 10 and 15. Any removed '1' is reported
// as a DataLoss, but the conversion still completes.
func Narrow(text string) (lw Legacy, losses []DataLoss, err error) {
	value, err := parseHex(text, insn.WORD_WIDTH)
	if err != nil {
		return
	}

	list := binary(value, insn.WORD_WIDTH)
	for n := range insn.FIELD_COUNT {
		index := n * LEGACY_FIELD_WIDTH
		if list[index] != '0' {
			losses = append(losses, DataLoss{Part: n, Index: index})
		}
		list = slices.Delete(list, index, index+1)
	}

	fld, err := field.Parse(string(list))
	if err != nil {
		return
	}

	lw = Legacy(fld.Bits)
	return
}
