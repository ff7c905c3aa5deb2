package asm

import (
	"errors"

	"github.com/ezrec/bitasm/translate"
)

var f = translate.From

var (
	// Lexical errors
	ErrUnexpectedCharacter = errors.New(f("unexpected character"))
	ErrIncompleteByte      = errors.New(f("incomplete binary byte"))
	ErrMalformedByte       = errors.New(f("malformed binary byte"))
	ErrInvalidHex          = errors.New(f("invalid hex literal"))
	ErrUnterminatedString  = errors.New(f("unterminated string literal"))
	ErrMismatchedParen     = errors.New(f("mismatched parenthesis"))
	ErrInvalidArithmetic   = errors.New(f("invalid arithmetic"))

	// Syntax errors
	ErrUnsupportedStartingToken = errors.New(f("unsupported starting token"))
	ErrInvalidParam             = errors.New(f("invalid parameter"))
	ErrNumberCanNotBeNegative   = errors.New(f("number can not be negative"))
	ErrTooLarge                 = errors.New(f("statement exceeds 64K"))

	// Encoding errors
	ErrDisplacementOutOfRange = errors.New(f("jump displacement out of range"))
	ErrInstructionInvalid     = errors.New(f("instruction invalid"))

	// Predefine errors
	ErrPredefineRange = errors.New(f("predefine out of range"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("'%v' is not a valid expression", string(err))
}

// ErrSyntax locates an error on a source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrPredefine locates an error in a predefined symbol.
type ErrPredefine struct {
	Name string
	Err  error
}

func (err *ErrPredefine) Error() string {
	return f("predefine %v %v", err.Name, err.Err)
}

func (err *ErrPredefine) Unwrap() error {
	return err.Err
}
