package adapt

import (
	"errors"

	"github.com/ezrec/insn20/translate"
)

var f = translate.From

var (
	ErrHexInvalid = errors.New(f("not a hex value"))
	ErrHexWidth   = errors.New(f("hex value too wide"))
)

// ErrParseHex is input text that is not hex.
type ErrParseHex string

func (err ErrParseHex) Error() string {
	return f("'%v' is not a hex value", string(err))
}

func (err ErrParseHex) Unwrap() error {
	return ErrHexInvalid
}

// DataLoss warns that narrowing removed a set bit.
type DataLoss struct {
	Part  int // Field being narrowed.
	Index int // Index of the removed bit, after prior removals.
}

func (dl DataLoss) String() string {
	return f("removed non-zero binary from part %d at binary index %d", dl.Part, dl.Index)
}
