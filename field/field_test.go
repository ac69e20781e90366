package field

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	assert := assert.New(t)

	lo, hi := Range(5)
	assert.Equal(-16, lo)
	assert.Equal(31, hi)

	lo, hi = Range(4)
	assert.Equal(-8, lo)
	assert.Equal(15, hi)
}

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		value int
		bits  string
	}{
		{0, "00000"},
		{2, "00010"},
		{12, "01100"},
		{15, "01111"},
		{16, "10000"},
		{31, "11111"},
		{-1, "11111"},
		{-2, "11110"},
		{-16, "10000"},
	}

	for _, entry := range table {
		fld, err := Encode(entry.value, 5)
		assert.NoError(err, entry.value)
		assert.Equal(5, fld.Width)
		assert.Equal(entry.bits, fld.String(), entry.value)
	}
}

func TestEncodeOutOfRange(t *testing.T) {
	assert := assert.New(t)

	for _, value := range []int{-17, 32, 100, -1000} {
		_, err := Encode(value, 5)
		assert.Error(err)
		assert.True(errors.Is(err, &ErrOutOfRange{}), value)

		var oor *ErrOutOfRange
		if assert.True(errors.As(err, &oor)) {
			assert.Equal(value, oor.Value)
			assert.Equal(5, oor.Width)
		}
	}
}

func TestEncodeWidth(t *testing.T) {
	assert := assert.New(t)

	_, err := Encode(0, 0)
	assert.ErrorIs(err, ErrWidthInvalid)

	_, err = Encode(0, MaxWidth+1)
	assert.ErrorIs(err, ErrWidthInvalid)
}

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for value := -16; value <= 15; value++ {
		fld, err := Encode(value, 5)
		assert.NoError(err)
		assert.Equal(value, Decode(fld))
	}
}

func TestDecodeHighHalf(t *testing.T) {
	assert := assert.New(t)

	// The upper unsigned half shares patterns with the negatives.
	for value := 16; value <= 31; value++ {
		fld, err := Encode(value, 5)
		assert.NoError(err)
		assert.Equal(value-32, Decode(fld))
	}
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	fld, err := Parse("11110")
	assert.NoError(err)
	assert.Equal(Field{Bits: 0x1e, Width: 5}, fld)
	assert.Equal(-2, Decode(fld))

	fld, err = Parse("0001")
	assert.NoError(err)
	assert.Equal(Field{Bits: 1, Width: 4}, fld)

	_, err = Parse("")
	assert.ErrorIs(err, ErrParseBits)

	_, err = Parse("0120")
	assert.ErrorIs(err, ErrParseBits)
}

func FuzzField(f *testing.F) {
	for width := 1; width <= 8; width++ {
		f.Add(0, width)
		f.Add(-1, width)
		f.Add(1<<width, width)
	}

	f.Fuzz(func(t *testing.T, value int, width int) {
		assert := assert.New(t)

		fld, err := Encode(value, width)
		if width < 1 || width > MaxWidth {
			assert.ErrorIs(err, ErrWidthInvalid)
			return
		}

		lo, hi := Range(width)
		if value < lo || value > hi {
			assert.ErrorIs(err, &ErrOutOfRange{})
			return
		}

		assert.NoError(err)
		assert.Equal(width, len(fld.String()))

		parsed, err := Parse(fld.String())
		assert.NoError(err)
		assert.Equal(fld, parsed)

		decoded := Decode(fld)
		if value < 1<<(width-1) {
			assert.Equal(value, decoded)
		} else {
			assert.Equal(value-(1<<width), decoded)
		}
	})
}
