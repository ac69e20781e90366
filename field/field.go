// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package field converts signed integers to and from fixed-width
// two's-complement bit fields.
//
// The accepted range for a field of width w is [-(2^(w-1)), 2^w - 1]. This is
// one sign bit wider than plain two's complement: non-negative values use the
// whole unsigned range, negative values are masked to w bits. As a result,
// values in [2^(w-1), 2^w - 1] share their bit pattern with negative values,
// and Decode reads them back as negative.
package field

import (
	"strings"
)

// MaxWidth is the widest supported field.
const MaxWidth = 31

// Field is a fixed-width bit pattern.
type Field struct {
	Bits  uint32 // Bit pattern, right aligned.
	Width int    // Number of bits.
}

// Range returns the inclusive range of values Encode accepts for width.
func Range(width int) (lo, hi int) {
	lo = -(1 << (width - 1))
	hi = (1 << width) - 1
	return
}

// mask returns the all-ones pattern for width.
func mask(width int) uint32 {
	return uint32(1<<width) - 1
}

// Encode converts value into a field of width bits.
func Encode(value int, width int) (fld Field, err error) {
	if width < 1 || width > MaxWidth {
		err = ErrWidthInvalid
		return
	}

	lo, hi := Range(width)
	if value < lo || value > hi {
		err = &ErrOutOfRange{Value: value, Width: width}
		return
	}

	fld.Width = width
	if value >= 0 {
		fld.Bits = uint32(value)
	} else {
		fld.Bits = uint32(value) & mask(width)
	}

	return
}

// Decode converts a field back to a signed integer, treating the top bit as
// the sign.
func Decode(fld Field) (value int) {
	if fld.Width < 1 || fld.Width > MaxWidth {
		return 0
	}

	bits := fld.Bits & mask(fld.Width)
	value = int(bits)
	if bits&(1<<(fld.Width-1)) != 0 {
		value -= 1 << fld.Width
	}

	return
}

// Parse converts a string of '0' and '1' characters into a field.
func Parse(bits string) (fld Field, err error) {
	if len(bits) < 1 || len(bits) > MaxWidth {
		err = ErrParseBits
		return
	}

	for _, c := range bits {
		fld.Bits <<= 1
		switch c {
		case '0':
		case '1':
			fld.Bits |= 1
		default:
			err = ErrParseBits
			return Field{}, err
		}
	}
	fld.Width = len(bits)

	return
}

// String returns the field as zero padded binary text, exactly Width
// characters long.
func (fld Field) String() string {
	var sb strings.Builder
	sb.Grow(fld.Width)
	for n := fld.Width - 1; n >= 0; n-- {
		if (fld.Bits>>n)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
