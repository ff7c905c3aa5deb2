package asm

import (
	"encoding/binary"
	"slices"
)

// Instruction is one encodable statement. The set of implementations is
// closed; Length and Encode switch over every variant.
type Instruction interface {
	instruction()
}

// BinaryLiteral emits a single byte.
type BinaryLiteral struct {
	Value uint8
}

// StringLiteral emits the bytes of a string.
type StringLiteral struct {
	Text string
}

// Times repeats an instruction Count times.
type Times struct {
	Count       uint16
	Instruction Instruction
}

// Origin moves the location counter and starts a new segment. It emits nothing.
type Origin struct {
	Address uint16
}

// Offset emits the address of a label plus an adjustment, little endian.
type Offset struct {
	Label  string
	Amount int32
}

// MovImmediate8 loads an immediate byte into an 8-bit register.
type MovImmediate8 struct {
	Register uint8
	Value    uint8
}

// MovAddress16 loads the address of a label into a 16-bit register.
type MovAddress16 struct {
	Register uint8
	Label    string
}

// MovImmediate16 loads an immediate word into a 16-bit register.
type MovImmediate16 struct {
	Register uint8
	Value    uint16
}

// OrRegisters is a register direct 'or' of two 8-bit registers.
type OrRegisters struct {
	Reg uint8 // Encoded in the ModRM reg field.
	RM  uint8 // Encoded in the ModRM r/m field.
}

// Jump is a short relative jump, conditional or not.
type Jump struct {
	Opcode   uint8
	Position uint16 // Location of the jump instruction itself.
	Label    string // Target label, if any.
	Target   uint16 // Absolute target when Label is empty.
}

// Simple is a one byte instruction with no operands.
type Simple struct {
	Opcode uint8
}

// Interrupt is a software interrupt.
type Interrupt struct {
	Vector uint8
}

func (BinaryLiteral) instruction()  {}
func (StringLiteral) instruction()  {}
func (Times) instruction()          {}
func (Origin) instruction()         {}
func (Offset) instruction()         {}
func (MovImmediate8) instruction()  {}
func (MovAddress16) instruction()   {}
func (MovImmediate16) instruction() {}
func (OrRegisters) instruction()    {}
func (Jump) instruction()           {}
func (Simple) instruction()         {}
func (Interrupt) instruction()      {}

// JUMP_LENGTH is the encoded size of every short jump.
const JUMP_LENGTH = 2

// Length returns the encoded size of an instruction. It never depends on
// label addresses.
func Length(ins Instruction) uint16 {
	switch ins := ins.(type) {
	case BinaryLiteral, Simple:
		return 1
	case StringLiteral:
		return uint16(len(ins.Text))
	case Times:
		return Length(ins.Instruction) * ins.Count
	case Origin:
		return 0
	case Offset, MovImmediate8, OrRegisters, Interrupt:
		return 2
	case Jump:
		return JUMP_LENGTH
	case MovAddress16, MovImmediate16:
		return 3
	}
	return 0
}

// Displacement returns the rel8 byte for a jump at position to target, and
// whether the distance fits a signed byte.
func Displacement(position, target uint16) (disp uint8, ok bool) {
	distance := int16(target - (position + JUMP_LENGTH))
	disp = uint8(distance)
	ok = distance >= -128 && distance <= 127
	return
}

// Encode returns the bytes of an instruction, with references resolved
// against labels. Out of range jumps are truncated to a byte.
func Encode(ins Instruction, labels LabelTable) (code []byte, err error) {
	return encode(ins, labels, false)
}

// EncodeStrict is Encode, but out of range jumps are an error.
func EncodeStrict(ins Instruction, labels LabelTable) (code []byte, err error) {
	return encode(ins, labels, true)
}

func encode(ins Instruction, labels LabelTable, strict bool) (code []byte, err error) {
	switch ins := ins.(type) {
	case BinaryLiteral:
		code = []byte{ins.Value}
	case StringLiteral:
		code = []byte(ins.Text)
	case Times:
		var once []byte
		once, err = encode(ins.Instruction, labels, strict)
		if err != nil {
			return
		}
		code = slices.Repeat(once, int(ins.Count))
	case Origin:
		code = []byte{}
	case Offset:
		var addr uint16
		addr, err = labels.Resolve(ins.Label)
		if err != nil {
			return
		}
		code = binary.LittleEndian.AppendUint16(nil, addr+uint16(ins.Amount))
	case MovImmediate8:
		code = []byte{OPCODE_MOV_R8_IMM + ins.Register, ins.Value}
	case MovAddress16:
		var addr uint16
		addr, err = labels.Resolve(ins.Label)
		if err != nil {
			return
		}
		code = binary.LittleEndian.AppendUint16([]byte{OPCODE_MOV_R16_IMM + ins.Register}, addr)
	case MovImmediate16:
		code = binary.LittleEndian.AppendUint16([]byte{OPCODE_MOV_R16_IMM + ins.Register}, ins.Value)
	case OrRegisters:
		code = []byte{OPCODE_OR_RM8_R8, MODRM_REGISTER | ins.Reg<<3 | ins.RM}
	case Jump:
		target := ins.Target
		if len(ins.Label) != 0 {
			target, err = labels.Resolve(ins.Label)
			if err != nil {
				return
			}
		}
		disp, ok := Displacement(ins.Position, target)
		if strict && !ok {
			err = ErrDisplacementOutOfRange
			return
		}
		code = []byte{ins.Opcode, disp}
	case Simple:
		code = []byte{ins.Opcode}
	case Interrupt:
		code = []byte{OPCODE_INT_IMM8, ins.Vector}
	default:
		err = ErrInstructionInvalid
	}
	return
}
