// Package insn implements the instruction codec for the 20-bit instruction
// set.
//
// An instruction word is four 5-bit fields, most significant first: the
// opcode, then three signed operands. Every field, opcode included, must lie
// within -16..=31 before it is encoded. Negative operands are stored in
// two's complement, so decoding a word reads operands 16..=31 back as
// -16..=-1.
package insn
