package asm

// Real mode x86 opcodes emitted by the assembler.
const (
	OPCODE_OR_RM8_R8   = 0x08 // or r/m8, r8
	OPCODE_JZ_REL8     = 0x74 // jz rel8
	OPCODE_LODSB       = 0xAC // lodsb
	OPCODE_MOV_R8_IMM  = 0xB0 // mov r8, imm8 (+r)
	OPCODE_MOV_R16_IMM = 0xB8 // mov r16, imm16 (+r)
	OPCODE_INT_IMM8    = 0xCD // int imm8
	OPCODE_JMP_REL8    = 0xEB // jmp rel8
	OPCODE_HLT         = 0xF4 // hlt
	OPCODE_CLI         = 0xFA // cli

	MODRM_REGISTER = 0xC0 // mod=11, register direct
)

// BOOT_ORIGIN is where firmware loads a boot sector.
const BOOT_ORIGIN = 0x7C00
