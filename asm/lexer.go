package asm

import (
	"strconv"
	"strings"
	"unicode"
)

// Location is the pair of location counters visible while lexing a line.
type Location struct {
	Start   uint16 // Value of $$, the start of the current segment.
	Current uint16 // Value of $, the running location counter.
}

// lexer holds the cursor over a single line of input.
type lexer struct {
	input  []rune
	pos    int
	loc    Location
	tokens []Token
}

// Lex converts a line of source into tokens, folding the first parenthesized
// arithmetic group into a single number.
func Lex(line string, loc Location) (tokens []Token, err error) {
	lx := &lexer{input: []rune(line), loc: loc}

	for lx.pos < len(lx.input) {
		c := lx.input[lx.pos]

		var tok Token
		switch {
		case c == ';':
			lx.comment()
			continue
		case unicode.IsSpace(c):
			lx.pos++
			continue
		case c == '"':
			tok, err = lx.quoted()
		case c == '$':
			tok, err = lx.location()
		case c == '(':
			tok = lx.symbol(TOKEN_OPEN_PAREN)
		case c == ')':
			tok = lx.symbol(TOKEN_CLOSE_PAREN)
		case c == '+':
			tok = lx.symbol(TOKEN_PLUS)
		case c == '*':
			tok = lx.symbol(TOKEN_MULTIPLY)
		case c == '-':
			if lx.negative() {
				tok, err = lx.negativeNumber()
			} else {
				tok = lx.symbol(TOKEN_MINUS)
			}
		case isWordRune(c):
			tok, err = lx.word()
		default:
			err = ErrUnexpectedCharacter
		}
		if err != nil {
			return
		}

		lx.tokens = append(lx.tokens, tok)
	}

	return Fold(lx.tokens)
}

func isWordRune(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}

// peek returns the rune after the cursor, if any.
func (lx *lexer) peek() (c rune, ok bool) {
	if lx.pos+1 < len(lx.input) {
		return lx.input[lx.pos+1], true
	}
	return
}

func (lx *lexer) symbol(kind TokenKind) Token {
	lx.pos++
	return Keyword(kind)
}

// comment skips to the end of the line.
func (lx *lexer) comment() {
	for lx.pos < len(lx.input) && lx.input[lx.pos] != '\n' {
		lx.pos++
	}
}

// quoted consumes a string literal verbatim up to the closing quote.
func (lx *lexer) quoted() (tok Token, err error) {
	lx.pos++
	start := lx.pos
	for lx.pos < len(lx.input) {
		if lx.input[lx.pos] == '"' {
			tok = String(string(lx.input[start:lx.pos]))
			lx.pos++
			return
		}
		lx.pos++
	}

	err = ErrUnterminatedString
	return
}

// location handles the $ and $$ pseudo-operands.
func (lx *lexer) location() (tok Token, err error) {
	next, ok := lx.peek()
	switch {
	case ok && next == '$':
		lx.pos += 2
		tok = Number(int32(lx.loc.Start))
	case !ok || unicode.IsSpace(next):
		lx.pos++
		tok = Number(int32(lx.loc.Current))
	default:
		err = ErrUnexpectedCharacter
	}
	return
}

// negative is true when a '-' at the cursor is a sign rather than an operator.
func (lx *lexer) negative() bool {
	next, ok := lx.peek()
	if !ok || !unicode.IsDigit(next) {
		return false
	}
	if len(lx.tokens) == 0 {
		return true
	}
	prev := lx.tokens[len(lx.tokens)-1]
	return !prev.IsValue() && prev.Kind != TOKEN_CLOSE_PAREN
}

func (lx *lexer) negativeNumber() (tok Token, err error) {
	lx.pos++
	tok, err = lx.word()
	if err != nil {
		return
	}
	if !tok.IsValue() {
		err = ErrUnexpectedCharacter
		return
	}
	tok = Number(-tok.Value)
	return
}

// word consumes a run of letters, digits and underscores, with an optional
// trailing ':' marking a label definition.
func (lx *lexer) word() (tok Token, err error) {
	start := lx.pos
	for lx.pos < len(lx.input) && isWordRune(lx.input[lx.pos]) {
		lx.pos++
	}
	word := string(lx.input[start:lx.pos])

	label := false
	if lx.pos < len(lx.input) && lx.input[lx.pos] == ':' {
		label = true
		lx.pos++
	}

	return lx.classify(word, label)
}

func (lx *lexer) classify(word string, label bool) (tok Token, err error) {
	lower := strings.ToLower(word)
	numeric := unicode.IsDigit([]rune(word)[0])

	if numeric && label {
		err = ErrUnexpectedCharacter
		return
	}

	switch {
	case strings.HasPrefix(lower, "0b"):
		return parseBinary(lower[2:])
	case strings.HasPrefix(lower, "0x"):
		return parseHex(lower[2:])
	case numeric:
		return parseNumber(word)
	case label:
		return Label(word), nil
	}

	if kind, ok := keywordMap[lower]; ok {
		if kind == TOKEN_JZ || kind == TOKEN_JMP {
			return JumpAt(kind, lx.loc.Current), nil
		}
		return Keyword(kind), nil
	}

	if reg, ok := Register(lower); ok {
		return reg, nil
	}

	return Reference(word), nil
}

// parseBinary parses the digits of a 0b literal, exactly eight, MSB first.
func parseBinary(digits string) (tok Token, err error) {
	var value uint8
	for n, c := range digits {
		if c != '0' && c != '1' {
			err = ErrMalformedByte
			return
		}
		if n >= 8 {
			err = ErrMalformedByte
			return
		}
		value = value<<1 | uint8(c-'0')
	}
	if len(digits) < 8 {
		err = ErrIncompleteByte
		return
	}

	tok = Byte(value)
	return
}

// parseHex parses the digits of a 0x literal: two digits are a byte, four are a number.
func parseHex(digits string) (tok Token, err error) {
	switch len(digits) {
	case 2:
		var value uint64
		value, err = strconv.ParseUint(digits, 16, 8)
		if err != nil {
			err = ErrInvalidHex
			return
		}
		tok = Byte(uint8(value))
	case 4:
		var value uint64
		value, err = strconv.ParseUint(digits, 16, 16)
		if err != nil {
			err = ErrInvalidHex
			return
		}
		tok = Number(int32(value))
	default:
		err = ErrInvalidHex
	}
	return
}

func parseNumber(word string) (tok Token, err error) {
	value, err := strconv.ParseInt(word, 10, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	tok = Number(int32(value))
	return
}
