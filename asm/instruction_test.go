package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJump(t *testing.T) {
	assert := assert.New(t)

	labels := LabelTable{"forward": 0x18, "back": 0x10}

	code, err := Encode(Jump{Opcode: OPCODE_JZ_REL8, Position: 0x10, Label: "forward"}, labels)
	assert.NoError(err)
	assert.Equal([]byte{0x74, 0x06}, code)

	code, err = Encode(Jump{Opcode: OPCODE_JMP_REL8, Position: 0x11, Label: "back"}, labels)
	assert.NoError(err)
	assert.Equal([]byte{0xEB, 0xFD}, code)

	// jmp $
	code, err = Encode(Jump{Opcode: OPCODE_JMP_REL8, Position: 0x7c00, Target: 0x7c00}, labels)
	assert.NoError(err)
	assert.Equal([]byte{0xEB, 0xFE}, code)

	assert.Equal(uint16(2), Length(Jump{}))

	_, err = Encode(Jump{Opcode: OPCODE_JZ_REL8, Label: "nowhere"}, labels)
	assert.Equal(ErrLabelMissing("nowhere"), err)
}

func TestDisplacement(t *testing.T) {
	assert := assert.New(t)

	disp, ok := Displacement(0x10, 0x18)
	assert.True(ok)
	assert.Equal(uint8(0x06), disp)

	disp, ok = Displacement(0x100, 0x100+2+127)
	assert.True(ok)
	assert.Equal(uint8(0x7f), disp)

	disp, ok = Displacement(0x100, 0x100+2-128)
	assert.True(ok)
	assert.Equal(uint8(0x80), disp)

	disp, ok = Displacement(0x100, 0x100+2+128)
	assert.False(ok)
	assert.Equal(uint8(0x80), disp)

	_, ok = Displacement(0x100, 0x100+2-129)
	assert.False(ok)

	// Wraps around the 64K address space.
	disp, ok = Displacement(0xfffe, 0x0000)
	assert.True(ok)
	assert.Equal(uint8(0x00), disp)
}

func TestEncodeStrict(t *testing.T) {
	assert := assert.New(t)

	labels := LabelTable{"far": 0x200}
	jump := Jump{Opcode: OPCODE_JMP_REL8, Position: 0, Label: "far"}

	code, err := Encode(jump, labels)
	assert.NoError(err)
	assert.Equal([]byte{0xEB, 0xFE}, code)

	_, err = EncodeStrict(jump, labels)
	assert.ErrorIs(err, ErrDisplacementOutOfRange)

	_, err = EncodeStrict(Times{Count: 2, Instruction: jump}, labels)
	assert.ErrorIs(err, ErrDisplacementOutOfRange)
}

func TestTimes(t *testing.T) {
	assert := assert.New(t)

	ins := Times{Count: 5, Instruction: BinaryLiteral{Value: 0x44}}
	assert.Equal(uint16(5), Length(ins))
	code, err := Encode(ins, nil)
	assert.NoError(err)
	assert.Equal([]byte{0x44, 0x44, 0x44, 0x44, 0x44}, code)

	ins = Times{Count: 3, Instruction: StringLiteral{Text: "Foo"}}
	assert.Equal(uint16(9), Length(ins))
	code, err = Encode(ins, nil)
	assert.NoError(err)
	assert.Equal([]byte("FooFooFoo"), code)

	ins = Times{Count: 0, Instruction: Simple{Opcode: OPCODE_HLT}}
	assert.Equal(uint16(0), Length(ins))
	code, err = Encode(ins, nil)
	assert.NoError(err)
	assert.Empty(code)
}

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	labels := LabelTable{"msg": 100, "boot": 0x7c00}

	table := []struct {
		ins      Instruction
		expected []byte
	}{
		{BinaryLiteral{Value: 0xcc}, []byte{0xcc}},
		{StringLiteral{Text: "Hi"}, []byte{'H', 'i'}},
		{StringLiteral{}, []byte{}},
		{Origin{Address: 0x7c00}, []byte{}},
		{Offset{Label: "msg", Amount: 200}, []byte{0x2c, 0x01}},
		{Offset{Label: "msg", Amount: -25}, []byte{0x4b, 0x00}},
		{MovImmediate8{Register: 4, Value: 0x55}, []byte{0xb4, 0x55}},
		{MovImmediate8{Register: 0, Value: 0x0e}, []byte{0xb0, 0x0e}},
		{MovAddress16{Register: 6, Label: "boot"}, []byte{0xbe, 0x00, 0x7c}},
		{MovImmediate16{Register: 4, Value: 0x7bfe}, []byte{0xbc, 0xfe, 0x7b}},
		{OrRegisters{Reg: 4, RM: 1}, []byte{0x08, 0xe1}},
		{OrRegisters{Reg: 0, RM: 0}, []byte{0x08, 0xc0}},
		{Simple{Opcode: OPCODE_HLT}, []byte{0xf4}},
		{Simple{Opcode: OPCODE_CLI}, []byte{0xfa}},
		{Simple{Opcode: OPCODE_LODSB}, []byte{0xac}},
		{Interrupt{Vector: 0x10}, []byte{0xcd, 0x10}},
	}

	for _, entry := range table {
		code, err := Encode(entry.ins, labels)
		assert.NoError(err, "%#v", entry.ins)
		assert.Equal(entry.expected, code, "%#v", entry.ins)
		assert.Equal(int(Length(entry.ins)), len(code), "%#v", entry.ins)

		// Encoding is idempotent.
		again, err := Encode(entry.ins, labels)
		assert.NoError(err)
		assert.Equal(code, again)
	}

	_, err := Encode(Offset{Label: "nowhere"}, labels)
	assert.Equal(ErrLabelMissing("nowhere"), err)

	_, err = Encode(MovAddress16{Label: "nowhere"}, labels)
	assert.Equal(ErrLabelMissing("nowhere"), err)

	_, err = Encode(nil, labels)
	assert.ErrorIs(err, ErrInstructionInvalid)
}

func TestLabelTable(t *testing.T) {
	assert := assert.New(t)

	labels := LabelTable{}

	_, duplicate := labels.Bind("start", 0x10)
	assert.False(duplicate)

	old, duplicate := labels.Bind("start", 0x20)
	assert.True(duplicate)
	assert.Equal(uint16(0x10), old)

	addr, err := labels.Resolve("start")
	assert.NoError(err)
	assert.Equal(uint16(0x20), addr)

	_, err = labels.Resolve("Start")
	assert.Equal(ErrLabelMissing("Start"), err)
	assert.Equal("label Start missing", err.Error())

	frozen := labels.Freeze()
	labels.Bind("later", 0x30)
	_, err = frozen.Resolve("later")
	assert.Error(err)

	var empty LabelTable
	assert.NotNil(empty.Freeze())
}
