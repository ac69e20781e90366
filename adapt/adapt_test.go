package adapt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/insn20/insn"
)

func TestWiden(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		in, hex, bin string
	}{
		{"ffff", "7bdef", "01111 01111 01111 01111"},
		{"1234", "08864", "00001 00010 00011 00100"},
		{"0", "00000", "00000 00000 00000 00000"},
		{"0x8421", "41041", "01000 00100 00010 00001"},
	}

	for _, entry := range table {
		word, err := Widen(entry.in)
		assert.NoError(err, entry.in)
		assert.Equal(entry.hex, word.Hex(), entry.in)
		assert.Equal(entry.bin, word.Binary(), entry.in)
	}
}

func TestNarrow(t *testing.T) {
	assert := assert.New(t)

	lw, losses, err := Narrow("7bdef")
	assert.NoError(err)
	assert.Empty(losses)
	assert.Equal("ffff", lw.Hex())
	assert.Equal("1111 1111 1111 1111", lw.Binary())

	lw, losses, err = Narrow("4099e")
	assert.NoError(err)
	assert.Equal([]DataLoss{{Part: 3, Index: 12}}, losses)
	assert.Equal("82ce", lw.Hex())
	assert.Equal("1000 0010 1100 1110", lw.Binary())

	lw, losses, err = Narrow("84210")
	assert.NoError(err)
	assert.Equal([]DataLoss{
		{Part: 0, Index: 0},
		{Part: 1, Index: 4},
		{Part: 2, Index: 8},
		{Part: 3, Index: 12},
	}, losses)
	assert.Equal(Legacy(0), lw)
	assert.Equal("0000", lw.Hex())
}

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for value := 0; value <= 0xffff; value += 0x0101 {
		lw := Legacy(value)
		word, err := Widen(lw.Hex())
		assert.NoError(err)

		back, losses, err := Narrow(word.Hex())
		assert.NoError(err)
		assert.Empty(losses)
		assert.Equal(lw, back)
	}
}

func TestParseErrors(t *testing.T) {
	assert := assert.New(t)

	for _, bad := range []string{"", "xyz", "-1", "12 34"} {
		_, err := Widen(bad)
		assert.ErrorIs(err, ErrHexInvalid, bad)

		_, _, err = Narrow(bad)
		assert.ErrorIs(err, ErrHexInvalid, bad)
	}

	_, err := Widen("10000")
	assert.ErrorIs(err, ErrHexWidth)

	_, _, err = Narrow("100000")
	assert.ErrorIs(err, ErrHexWidth)

	lw, err := ParseLegacy(" 0XBEEF ")
	assert.NoError(err)
	assert.Equal(Legacy(0xbeef), lw)
}

func TestWidenIsInstructionWord(t *testing.T) {
	assert := assert.New(t)

	// Legacy fields f 2 0 1 widen to syscall 2 0 1.
	word, err := Widen("f201")
	assert.NoError(err)

	in, err := insn.Decode(word)
	assert.NoError(err)
	assert.Equal(insn.OP_SYSCALL, in.Opcode)
	assert.Equal([3]int{2, 0, 1}, in.Operands)
}
