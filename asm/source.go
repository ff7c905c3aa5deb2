package asm

import (
	"io"
	"strings"
)

// Source is an appendable sink of assembly text, one statement per line.
// Code generators write into it and hand the result to Assembler.Parse.
type Source struct {
	text strings.Builder
}

// Label appends a label definition on its own line.
func (src *Source) Label(name string) {
	src.text.WriteString(name)
	src.text.WriteString(":\n")
}

// Emit appends one statement.
func (src *Source) Emit(mnemonic string, operands ...string) {
	src.text.WriteString(mnemonic)
	for _, operand := range operands {
		src.text.WriteByte(' ')
		src.text.WriteString(operand)
	}
	src.text.WriteByte('\n')
}

// Comment appends a comment line.
func (src *Source) Comment(text string) {
	src.text.WriteString("; ")
	src.text.WriteString(text)
	src.text.WriteByte('\n')
}

func (src *Source) String() string {
	return src.text.String()
}

// Reader returns the text accumulated so far.
func (src *Source) Reader() io.Reader {
	return strings.NewReader(src.text.String())
}
