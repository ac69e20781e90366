package field

import (
	"errors"

	"github.com/ezrec/insn20/translate"
)

var f = translate.From

var (
	ErrWidthInvalid = errors.New(f("field width invalid"))
	ErrParseBits    = errors.New(f("not a binary field"))
)

// ErrOutOfRange reports a value that does not fit a field of the given width.
type ErrOutOfRange struct {
	Value int
	Width int
}

func (err *ErrOutOfRange) Error() string {
	lo, hi := Range(err.Width)
	return f("%d is not within the range %d..=%d", err.Value, lo, hi)
}

// Is matches any *ErrOutOfRange, regardless of value or width.
func (err *ErrOutOfRange) Is(target error) (ok bool) {
	_, ok = target.(*ErrOutOfRange)
	return
}
