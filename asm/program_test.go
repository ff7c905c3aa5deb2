package asm

import (
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramDebug(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Origin: 0x7c00}
	prog, err := asm.Parse(strings.NewReader("start:\ncli\nmov si msg\nmsg:\n\"Hello World!\""))
	assert.NoError(err)

	dbg := prog.Debug(0x7c02)
	if assert.NotNil(dbg.Statement) {
		assert.Equal(3, dbg.LineNo)
		assert.Equal("mov si msg", dbg.Line)
		assert.Equal(1, dbg.Index)
	}

	dbg = prog.Debug(0x7c00)
	if assert.NotNil(dbg.Statement) {
		assert.Equal(2, dbg.LineNo)
		assert.Equal(0, dbg.Index)
	}

	dbg = prog.Debug(0x9000)
	assert.Nil(dbg.Statement)

	dbg = prog.Debug(0x0000)
	assert.Nil(dbg.Statement)
}

func TestProgramListing(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Origin: 0x7c00}
	prog, err := asm.Parse(strings.NewReader("start:\ncli\nmov si msg\nmsg:\n\"Hello World!\""))
	assert.NoError(err)

	var out strings.Builder
	err = prog.Listing(&out)
	assert.NoError(err)

	expected := strings.Join([]string{
		"    2 7C00 FA                cli",
		"    3 7C01 BE047C            mov si msg",
		`    5 7C04 48656C6C6F20576F+ "Hello World!"`,
		"",
	}, "\n")
	assert.Equal(expected, out.String())

	prog, err = asm.Parse(strings.NewReader("jmp nowhere"))
	assert.NoError(err)
	err = prog.Listing(&out)
	assert.Equal(ErrLabelMissing("nowhere"), err.(*ErrSyntax).Err)
}

func TestProgramSymbols(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader("zed:\nhlt\nbeta:\nalpha:\nhlt\nstart: cli"))
	assert.NoError(err)

	var names []string
	var addrs []uint16
	for name, addr := range prog.Symbols() {
		names = append(names, name)
		addrs = append(addrs, addr)
	}

	assert.Equal([]string{"zed", "alpha", "beta", "start"}, names)
	assert.Equal([]uint16{0, 1, 1, 2}, addrs)
	assert.Equal(prog.Labels, LabelTable(maps.Collect(prog.Symbols())))

	for name := range prog.Symbols() {
		assert.Equal("zed", name)
		break
	}
}

func TestSource(t *testing.T) {
	assert := assert.New(t)

	src := &Source{}
	src.Comment("generated")
	src.Emit("org", "0x7c00")
	src.Label("loop")
	src.Emit("cli")
	src.Emit("mov", "ah", "0x0e")
	src.Emit("jmp", "loop")

	assert.Equal("; generated\norg 0x7c00\nloop:\ncli\nmov ah 0x0e\njmp loop\n", src.String())

	asm := &Assembler{}
	code, err := asm.Assemble(src.Reader())
	assert.NoError(err)
	assert.Equal([]byte{0xfa, 0xb4, 0x0e, 0xeb, 0xfb}, code)
}
