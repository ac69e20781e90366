package insn

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Opcode is the 5-bit instruction class in the most significant field.
type Opcode int

const (
	OP_LOAD    = Opcode(0b00001) // load
	OP_LOADI   = Opcode(0b00010) // loadi
	OP_STORE   = Opcode(0b00011) // store
	OP_BNE     = Opcode(0b00101) // bne
	OP_ADDI    = Opcode(0b00110) // addi
	OP_ADD     = Opcode(0b01000) // add
	OP_SYSCALL = Opcode(0b01111) // syscall
)

// mnemonicMap maps mnemonics to opcodes.
var mnemonicMap = map[string]Opcode{
	"load":    OP_LOAD,
	"store":   OP_STORE,
	"add":     OP_ADD,
	"syscall": OP_SYSCALL,
	"loadi":   OP_LOADI,
	"bne":     OP_BNE,
	"addi":    OP_ADDI,
}

// opcodeMap is the inverse of mnemonicMap.
var opcodeMap = func() map[Opcode]string {
	out := make(map[Opcode]string, len(mnemonicMap))
	for name, op := range mnemonicMap {
		out[op] = name
	}
	return out
}()

// Lookup returns the opcode for a mnemonic, ignoring case.
func Lookup(mnemonic string) (op Opcode, ok bool) {
	op, ok = mnemonicMap[strings.ToLower(mnemonic)]
	return
}

// Mnemonics returns the known mnemonics, sorted.
func Mnemonics() []string {
	return slices.Sorted(maps.Keys(mnemonicMap))
}

// Valid returns true if the opcode is in the opcode table.
func (op Opcode) Valid() bool {
	_, ok := opcodeMap[op]
	return ok
}

func (op Opcode) String() string {
	name, ok := opcodeMap[op]
	if !ok {
		return fmt.Sprintf("Opcode(%d)", int(op))
	}
	return name
}
