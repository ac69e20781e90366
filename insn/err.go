package insn

import (
	"errors"

	"github.com/ezrec/insn20/translate"
)

var f = translate.From

var (
	// Line errors
	ErrTokenCount     = errors.New(f("instruction must be a mnemonic and 3 operands"))
	ErrOperandInteger = errors.New(f("operand is not an integer"))

	// Encode errors
	ErrMnemonicUnknown = errors.New(f("mnemonic unknown"))
	ErrFieldRange      = errors.New(f("a decimal is not within the range %d..=%d", FIELD_MIN, FIELD_MAX))

	// Decode errors
	ErrOpcodeUnknown = errors.New(f("opcode unknown"))
	ErrHexInvalid    = errors.New(f("not a 20-bit hex word"))
)

// ErrSyntax locates an error within the source text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %3d: '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrField names the field that failed to encode.
type ErrField struct {
	Index int // 0 is the opcode, 1..3 the operands.
	Err   error
}

func (err *ErrField) Error() string {
	return f("field %d: %v", err.Index, err.Err)
}

func (err *ErrField) Unwrap() []error {
	return []error{ErrFieldRange, err.Err}
}

// ErrParseNumber is an operand token that is not a decimal integer.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not an integer", string(err))
}

func (err ErrParseNumber) Unwrap() error {
	return ErrOperandInteger
}

// ErrParseMnemonic is a mnemonic missing from the opcode table.
type ErrParseMnemonic string

func (err ErrParseMnemonic) Error() string {
	return f("cannot find instruction '%v'", string(err))
}

func (err ErrParseMnemonic) Unwrap() error {
	return ErrMnemonicUnknown
}
