package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert := assert.New(t)

	table := map[string][]Token{
		"times (5 + 4 * 10 - 10) 0x44": {Keyword(TOKEN_TIMES), Number(35), Byte(0x44)},
		"((5+4)*10-10)":                {Number(80)},
		"(7)":                          {Number(7)},
		"(0x10 * 2)":                   {Number(32)},
		"(10 - 4 - 3)":                 {Number(3)},
		"(2 * 3 * 4 + 1)":              {Number(25)},
		"(1 + 2 * (3 + 4) * 5)":        {Number(71)},
		"offset msg (2 * 8)":           {Keyword(TOKEN_OFFSET), Reference("msg"), Number(16)},
	}

	for text, expected := range table {
		tokens, err := Lex(text, Location{})
		assert.NoError(err, text)
		assert.Equal(expected, tokens, text)
	}
}

func TestFoldFirstGroupOnly(t *testing.T) {
	assert := assert.New(t)

	tokens, err := Lex("(1 + 1) (2 + 2)", Location{})
	assert.NoError(err)
	assert.Equal([]Token{
		Number(2),
		Keyword(TOKEN_OPEN_PAREN),
		Number(2),
		Keyword(TOKEN_PLUS),
		Number(2),
		Keyword(TOKEN_CLOSE_PAREN),
	}, tokens)

	_, err = Extract(tokens)
	assert.ErrorIs(err, ErrUnsupportedStartingToken)
}

func TestFoldErrors(t *testing.T) {
	assert := assert.New(t)

	table := map[string]error{
		"(1 + 2":       ErrMismatchedParen,
		"((1 + 2)":     ErrMismatchedParen,
		"(1 +)":        ErrInvalidArithmetic,
		"(* 2)":        ErrInvalidArithmetic,
		"()":           ErrInvalidArithmetic,
		"(1 2)":        ErrInvalidArithmetic,
		"(1 + label)":  ErrInvalidArithmetic,
		`(1 + "two")`:  ErrInvalidArithmetic,
		"times (ax) 1": ErrInvalidArithmetic,
	}

	for text, expected := range table {
		_, err := Lex(text, Location{})
		assert.ErrorIs(err, expected, text)
	}
}

func TestFoldNoGroup(t *testing.T) {
	assert := assert.New(t)

	tokens := []Token{Keyword(TOKEN_HLT)}
	folded, err := Fold(tokens)
	assert.NoError(err)
	assert.Equal(tokens, folded)

	// A stray ')' without '(' is not a group.
	tokens = []Token{Number(1), Keyword(TOKEN_CLOSE_PAREN)}
	folded, err = Fold(tokens)
	assert.NoError(err)
	assert.Equal(tokens, folded)
}
