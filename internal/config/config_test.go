package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/bitasm/asm"
	"github.com/ezrec/bitasm/image"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bitasm.toml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	profile, err := Default().Profile()
	assert.NoError(err)
	assert.Equal(image.BootSector, profile)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := writeConfig(t, `
[assembler]
origin = 0x7c00
strict = true

[assembler.defines]
STACK = "ORIGIN - 2"
TOP = "STACK - 0x100"

[image]
size = 1024
fill = 0x90
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(0x7c00, cfg.Assembler.Origin)
	assert.True(cfg.Assembler.Strict)
	assert.Equal("ORIGIN - 2", cfg.Assembler.Defines["STACK"])

	profile, err := cfg.Profile()
	assert.NoError(err)
	assert.Equal(1024, profile.Size)
	assert.Equal(byte(0x90), profile.Fill)
	assert.Equal([]byte{0x55, 0xAA}, profile.Signature)

	a := &asm.Assembler{}
	cfg.Apply(a)
	assert.Equal(uint16(0x7c00), a.Origin)
	assert.True(a.Strict)

	prog, err := a.Parse(strings.NewReader("mov sp STACK\nmov bp TOP\n"))
	assert.NoError(err)
	code, err := prog.Encode()
	assert.NoError(err)
	assert.Equal([]byte{0xBC, 0xFE, 0x7B, 0xBD, 0xFE, 0x7A}, code)
}

func TestLoad_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(err)

	_, err = Load(writeConfig(t, "[image]\nsize = 0\n"))
	assert.ErrorIs(err, ErrImageSize)

	_, err = Load(writeConfig(t, "[image]\nsignature = [0x55, 0x1AA]\n"))
	assert.ErrorIs(err, ErrSignature)

	_, err = Load(writeConfig(t, "[image]\nfill = -1\n"))
	assert.ErrorIs(err, ErrFill)

	_, err = Load(writeConfig(t, "[assembler]\norigin = 0x10000\n"))
	assert.ErrorIs(err, ErrOrigin)

	_, err = Load(writeConfig(t, "[image\n"))
	assert.Error(err)
}
