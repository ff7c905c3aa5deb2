package asm

import (
	"math"
)

// Extract builds the instruction for one statement. tokens must not be
// empty and must not start with a label definition.
func Extract(tokens []Token) (ins Instruction, err error) {
	if len(tokens) == 0 {
		err = ErrUnsupportedStartingToken
		return
	}

	switch tokens[0].Kind {
	case TOKEN_BYTE:
		err = expectEnd(tokens, 1)
		ins = BinaryLiteral{Value: uint8(tokens[0].Value)}
	case TOKEN_STRING:
		if len(tokens[0].Text) > math.MaxUint16 {
			err = ErrTooLarge
			return
		}
		err = expectEnd(tokens, 1)
		ins = StringLiteral{Text: tokens[0].Text}
	case TOKEN_TIMES:
		ins, err = extractTimes(tokens)
	case TOKEN_ORG:
		ins, err = extractOrigin(tokens)
	case TOKEN_OFFSET:
		ins, err = extractOffset(tokens)
	case TOKEN_INT:
		if !hasKind(tokens, 1, TOKEN_BYTE) {
			err = ErrInvalidParam
			return
		}
		err = expectEnd(tokens, 2)
		ins = Interrupt{Vector: uint8(tokens[1].Value)}
	case TOKEN_HLT:
		err = expectEnd(tokens, 1)
		ins = Simple{Opcode: OPCODE_HLT}
	case TOKEN_CLI:
		err = expectEnd(tokens, 1)
		ins = Simple{Opcode: OPCODE_CLI}
	case TOKEN_LODSB:
		err = expectEnd(tokens, 1)
		ins = Simple{Opcode: OPCODE_LODSB}
	case TOKEN_MOV:
		ins, err = extractMov(tokens)
	case TOKEN_OR:
		ins, err = extractOr(tokens)
	case TOKEN_JZ:
		ins, err = extractJump(tokens, OPCODE_JZ_REL8)
	case TOKEN_JMP:
		ins, err = extractJump(tokens, OPCODE_JMP_REL8)
	default:
		err = ErrUnsupportedStartingToken
	}

	if err != nil {
		ins = nil
	}

	return
}

// hasKind is true if tokens[n] exists and is of kind.
func hasKind(tokens []Token, n int, kind TokenKind) bool {
	return n < len(tokens) && tokens[n].Kind == kind
}

// expectEnd checks that no tokens follow the first n.
func expectEnd(tokens []Token, n int) error {
	if len(tokens) > n {
		return ErrInvalidParam
	}
	return nil
}

// count validates a non-negative 16-bit numeric operand.
func count(tokens []Token, n int) (value uint16, err error) {
	if !hasKind(tokens, n, TOKEN_NUMBER) {
		err = ErrInvalidParam
		return
	}
	number := tokens[n].Value
	if number < 0 {
		err = ErrNumberCanNotBeNegative
		return
	}
	if number > math.MaxUint16 {
		err = ErrInvalidParam
		return
	}
	value = uint16(number)
	return
}

// times COUNT STATEMENT...
func extractTimes(tokens []Token) (ins Instruction, err error) {
	amount, err := count(tokens, 1)
	if err != nil {
		return
	}
	if len(tokens) < 3 {
		err = ErrInvalidParam
		return
	}

	inner, err := Extract(tokens[2:])
	if err != nil {
		return
	}
	if _, ok := inner.(Origin); ok {
		err = ErrInvalidParam
		return
	}
	if uint64(Length(inner))*uint64(amount) > math.MaxUint16 {
		err = ErrTooLarge
		return
	}

	ins = Times{Count: amount, Instruction: inner}
	return
}

// org ADDRESS
func extractOrigin(tokens []Token) (ins Instruction, err error) {
	addr, err := count(tokens, 1)
	if err != nil {
		return
	}
	err = expectEnd(tokens, 2)
	ins = Origin{Address: addr}
	return
}

// offset LABEL AMOUNT
func extractOffset(tokens []Token) (ins Instruction, err error) {
	if !hasKind(tokens, 1, TOKEN_REFERENCE) || !hasKind(tokens, 2, TOKEN_NUMBER) {
		err = ErrInvalidParam
		return
	}
	err = expectEnd(tokens, 3)
	ins = Offset{Label: tokens[1].Text, Amount: tokens[2].Value}
	return
}

// mov REG8 BYTE | mov REG16 LABEL | mov REG16 NUMBER
func extractMov(tokens []Token) (ins Instruction, err error) {
	if len(tokens) != 3 {
		err = ErrInvalidParam
		return
	}

	dst, src := tokens[1], tokens[2]
	reg, ok := dst.Register()
	if !ok {
		err = ErrInvalidParam
		return
	}

	switch {
	case dst.Kind == TOKEN_REGISTER8 && src.Kind == TOKEN_BYTE:
		ins = MovImmediate8{Register: reg, Value: uint8(src.Value)}
	case dst.Kind == TOKEN_REGISTER16 && src.Kind == TOKEN_REFERENCE:
		ins = MovAddress16{Register: reg, Label: src.Text}
	case dst.Kind == TOKEN_REGISTER16 && src.Kind == TOKEN_NUMBER:
		if src.Value < math.MinInt16 || src.Value > math.MaxUint16 {
			err = ErrInvalidParam
			return
		}
		ins = MovImmediate16{Register: reg, Value: uint16(src.Value)}
	default:
		err = ErrInvalidParam
	}
	return
}

// or REG8 REG8
func extractOr(tokens []Token) (ins Instruction, err error) {
	if !hasKind(tokens, 1, TOKEN_REGISTER8) || !hasKind(tokens, 2, TOKEN_REGISTER8) {
		err = ErrInvalidParam
		return
	}
	err = expectEnd(tokens, 3)
	reg, _ := tokens[1].Register()
	rm, _ := tokens[2].Register()
	ins = OrRegisters{Reg: reg, RM: rm}
	return
}

// jz TARGET | jmp TARGET, where TARGET is a label or an address.
func extractJump(tokens []Token, opcode uint8) (ins Instruction, err error) {
	if len(tokens) != 2 {
		err = ErrInvalidParam
		return
	}

	jump := Jump{Opcode: opcode, Position: tokens[0].Position}
	target := tokens[1]
	switch target.Kind {
	case TOKEN_REFERENCE:
		jump.Label = target.Text
	case TOKEN_NUMBER:
		if target.Value < 0 || target.Value > math.MaxUint16 {
			err = ErrInvalidParam
			return
		}
		jump.Target = uint16(target.Value)
	default:
		err = ErrInvalidParam
		return
	}

	ins = jump
	return
}
