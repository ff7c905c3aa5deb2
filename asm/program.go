package asm

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"
)

// Statement is one instruction with its source line and address.
type Statement struct {
	LineNo      int
	Line        string
	Address     uint16
	Instruction Instruction
}

// Length is the encoded size of the statement.
func (st *Statement) Length() uint16 {
	return Length(st.Instruction)
}

// Program is the result of the first sweep.
type Program struct {
	Statements []Statement
	Labels     LabelTable // Frozen; never modified after Parse.
	Strict     bool       // Out of range jumps are errors.
}

// EncodeStatement encodes a single statement against the label table.
func (prog *Program) EncodeStatement(st *Statement) (code []byte, err error) {
	if prog.Strict {
		code, err = EncodeStrict(st.Instruction, prog.Labels)
	} else {
		code, err = Encode(st.Instruction, prog.Labels)
	}
	if err != nil {
		err = &ErrSyntax{LineNo: st.LineNo, Line: st.Line, Err: err}
	}
	return
}

// Encode is the second sweep: every statement is encoded in source order
// and the results concatenated.
func (prog *Program) Encode() (code []byte, err error) {
	for n := range prog.Statements {
		var bytes []byte
		bytes, err = prog.EncodeStatement(&prog.Statements[n])
		if err != nil {
			return nil, err
		}
		code = append(code, bytes...)
	}

	if code == nil {
		code = []byte{}
	}

	return
}

// Debug locates an address within a statement.
type Debug struct {
	*Statement
	Index int // Byte offset of the address within the statement.
}

// Debug returns the statement whose encoding covers addr.
func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n, st := range prog.Statements {
		if addr >= st.Address && uint32(addr) < uint32(st.Address)+uint32(st.Length()) {
			dbg = Debug{
				Statement: &prog.Statements[n],
				Index:     int(addr - st.Address),
			}
			break
		}
	}

	return
}

// Symbols yields the labels ordered by address, then by name.
func (prog *Program) Symbols() iter.Seq2[string, uint16] {
	return func(yield func(name string, addr uint16) bool) {
		names := slices.SortedFunc(maps.Keys(prog.Labels), func(a, b string) int {
			return cmp.Or(cmp.Compare(prog.Labels[a], prog.Labels[b]), cmp.Compare(a, b))
		})
		for _, name := range names {
			if !yield(name, prog.Labels[name]) {
				return
			}
		}
	}
}

// LISTING_BYTES is the number of encoded bytes shown per listing row.
const LISTING_BYTES = 8

// Listing writes one row per statement: line number, address, the first
// encoded bytes, and the source text.
func (prog *Program) Listing(w io.Writer) (err error) {
	for n := range prog.Statements {
		st := &prog.Statements[n]

		var code []byte
		code, err = prog.EncodeStatement(st)
		if err != nil {
			return
		}

		more := " "
		if len(code) > LISTING_BYTES {
			code = code[:LISTING_BYTES]
			more = "+"
		}

		_, err = fmt.Fprintf(w, "%5d %04X %-*X%s %s\n", st.LineNo, st.Address, LISTING_BYTES*2, code, more, st.Line)
		if err != nil {
			return
		}
	}

	return
}
