package asm

import (
	"fmt"
)

//go:generate go tool stringer -linecomment -type=TokenKind

// TokenKind is the type of a lexed token.
type TokenKind int

const (
	TOKEN_NONE        = TokenKind(0)  // none
	TOKEN_BYTE        = TokenKind(1)  // byte
	TOKEN_NUMBER      = TokenKind(2)  // number
	TOKEN_STRING      = TokenKind(3)  // string
	TOKEN_LABEL       = TokenKind(4)  // label
	TOKEN_REFERENCE   = TokenKind(5)  // reference
	TOKEN_REGISTER8   = TokenKind(6)  // reg8
	TOKEN_REGISTER16  = TokenKind(7)  // reg16
	TOKEN_TIMES       = TokenKind(8)  // times
	TOKEN_ORG         = TokenKind(9)  // org
	TOKEN_OFFSET      = TokenKind(10) // offset
	TOKEN_INT         = TokenKind(11) // int
	TOKEN_HLT         = TokenKind(12) // hlt
	TOKEN_CLI         = TokenKind(13) // cli
	TOKEN_LODSB       = TokenKind(14) // lodsb
	TOKEN_MOV         = TokenKind(15) // mov
	TOKEN_OR          = TokenKind(16) // or
	TOKEN_JZ          = TokenKind(17) // jz
	TOKEN_JMP         = TokenKind(18) // jmp
	TOKEN_OPEN_PAREN  = TokenKind(19) // (
	TOKEN_CLOSE_PAREN = TokenKind(20) // )
	TOKEN_PLUS        = TokenKind(21) // +
	TOKEN_MINUS       = TokenKind(22) // -
	TOKEN_MULTIPLY    = TokenKind(23) // *
)

// keywordMap maps lowercased mnemonics and directives to their token kind.
var keywordMap = map[string]TokenKind{
	"times":  TOKEN_TIMES,
	"org":    TOKEN_ORG,
	"offset": TOKEN_OFFSET,
	"int":    TOKEN_INT,
	"hlt":    TOKEN_HLT,
	"cli":    TOKEN_CLI,
	"lodsb":  TOKEN_LODSB,
	"mov":    TOKEN_MOV,
	"or":     TOKEN_OR,
	"jz":     TOKEN_JZ,
	"jmp":    TOKEN_JMP,
}

// register8Map maps 8-bit register names to their encoding index.
var register8Map = map[string]uint8{
	"al": 0,
	"cl": 1,
	"dl": 2,
	"bl": 3,
	"ah": 4,
	"ch": 5,
	"dh": 6,
	"bh": 7,
}

// register16Map maps 16-bit register names to their encoding index.
var register16Map = map[string]uint8{
	"ax": 0,
	"cx": 1,
	"dx": 2,
	"bx": 3,
	"sp": 4,
	"bp": 5,
	"si": 6,
	"di": 7,
}

// Token is a single lexed item. Tokens are values and never modified
// after lexing.
type Token struct {
	Kind     TokenKind
	Value    int32  // Byte or number value.
	Text     string // String contents, label or reference name, register name.
	Position uint16 // Location counter at a jz or jmp.
}

// Register returns the encoding index of a register token.
func (tok Token) Register() (index uint8, ok bool) {
	switch tok.Kind {
	case TOKEN_REGISTER8:
		index, ok = register8Map[tok.Text]
	case TOKEN_REGISTER16:
		index, ok = register16Map[tok.Text]
	}
	return
}

// IsValue is true for tokens usable as an arithmetic operand.
func (tok Token) IsValue() bool {
	return tok.Kind == TOKEN_NUMBER || tok.Kind == TOKEN_BYTE
}

func (tok Token) String() string {
	switch tok.Kind {
	case TOKEN_BYTE:
		return fmt.Sprintf("0x%02x", uint8(tok.Value))
	case TOKEN_NUMBER:
		return fmt.Sprintf("%d", tok.Value)
	case TOKEN_STRING:
		return fmt.Sprintf("%q", tok.Text)
	case TOKEN_LABEL:
		return tok.Text + ":"
	case TOKEN_REFERENCE, TOKEN_REGISTER8, TOKEN_REGISTER16:
		return tok.Text
	case TOKEN_JZ, TOKEN_JMP:
		return fmt.Sprintf("%v@0x%04x", tok.Kind, tok.Position)
	default:
		return tok.Kind.String()
	}
}

// Byte returns a byte literal token.
func Byte(value uint8) Token {
	return Token{Kind: TOKEN_BYTE, Value: int32(value)}
}

// Number returns a numeric literal token.
func Number(value int32) Token {
	return Token{Kind: TOKEN_NUMBER, Value: value}
}

// String returns a quoted string literal token.
func String(text string) Token {
	return Token{Kind: TOKEN_STRING, Text: text}
}

// Label returns a label definition token.
func Label(name string) Token {
	return Token{Kind: TOKEN_LABEL, Text: name}
}

// Reference returns a symbolic reference token.
func Reference(name string) Token {
	return Token{Kind: TOKEN_REFERENCE, Text: name}
}

// Register returns a register token, or false if name is not a register.
func Register(name string) (tok Token, ok bool) {
	if _, ok = register8Map[name]; ok {
		tok = Token{Kind: TOKEN_REGISTER8, Text: name}
		return
	}
	if _, ok = register16Map[name]; ok {
		tok = Token{Kind: TOKEN_REGISTER16, Text: name}
		return
	}
	return
}

// Keyword returns a token with no payload.
func Keyword(kind TokenKind) Token {
	return Token{Kind: kind}
}

// JumpAt returns a jz or jmp token located at position.
func JumpAt(kind TokenKind, position uint16) Token {
	return Token{Kind: kind, Position: position}
}
