// Package asm implements a minimal assembler for a small subset of 16-bit
// real mode x86, producing raw bytes suitable for a boot sector.
//
// Source is line oriented: one statement per line, with an optional leading
// label definition ("name:") and an optional trailing ";" comment. Values
// may be written as binary bytes (0b01010101), hex bytes (0x55), hex words
// (0x7c00), decimal numbers, quoted strings, the location counter ($), the
// segment start ($$), and one parenthesized arithmetic group using + - *.
//
// Supported statements:
//
//	0x55 | 0b01010101 | "text"   raw bytes
//	times COUNT STATEMENT        repeat a statement
//	org ADDRESS                  move the location counter
//	offset LABEL AMOUNT          16-bit address of a label plus AMOUNT
//	mov REG8 BYTE                mov REG16 LABEL | NUMBER
//	or REG8 REG8
//	jz TARGET | jmp TARGET       short relative jumps
//	int BYTE | hlt | cli | lodsb
//
// Assembly runs in two sweeps. Parse lexes every line, binds labels to the
// running location counter and extracts the instructions; Program.Encode
// then encodes every instruction against the completed label table, so
// forward references need no backpatching.
package asm
