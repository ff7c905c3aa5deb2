// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

// Assembler is a two sweep assembler for a small subset of real mode x86.
type Assembler struct {
	Verbose bool               // If set, logs every source line at debug level.
	Origin  uint16             // Initial location counter and value of $$.
	Strict  bool               // If set, out of range jumps fail to encode.
	Log     logrus.FieldLogger // Diagnostics. Defaults to the standard logger.

	predefine []predefine
}

// log returns the diagnostics logger.
func (asm *Assembler) log() logrus.FieldLogger {
	if asm.Log == nil {
		return logrus.StandardLogger()
	}
	return asm.Log
}

// Parse runs the first sweep over input: every line is lexed, labels are
// bound to the running location counter, and one instruction is extracted
// per remaining statement. The returned Program holds the frozen label table.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	labels, err := asm.predefined()
	if err != nil {
		return
	}

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	loc := Location{Start: asm.Origin, Current: asm.Origin}
	var statements []Statement

	// End of the code so far. May reach 0x10000, where loc.Current has wrapped.
	end := uint32(loc.Current)

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if asm.Verbose {
			asm.log().WithFields(logrus.Fields{
				"line":     lineno,
				"location": loc.Current,
			}).Debug(line)
		}

		var tokens []Token
		tokens, err = Lex(line, loc)
		if err != nil {
			return
		}

		if len(tokens) > 0 && tokens[0].Kind == TOKEN_LABEL {
			if end > math.MaxUint16 {
				err = ErrTooLarge
				return
			}
			name := tokens[0].Text
			old, duplicate := labels.Bind(name, loc.Current)
			if duplicate {
				asm.log().WithFields(logrus.Fields{
					"label": name,
					"line":  lineno,
					"old":   old,
					"new":   loc.Current,
				}).Warn(f("label redefined"))
			}
			tokens = tokens[1:]
		}

		if len(tokens) == 0 {
			continue
		}

		var ins Instruction
		ins, err = Extract(tokens)
		if err != nil {
			return
		}

		if origin, ok := ins.(Origin); ok {
			loc = Location{Start: origin.Address, Current: origin.Address}
			end = uint32(origin.Address)
			continue
		}

		end += uint32(Length(ins))
		if end > math.MaxUint16+1 {
			err = ErrTooLarge
			return
		}

		statements = append(statements, Statement{
			LineNo:      lineno,
			Line:        line,
			Address:     loc.Current,
			Instruction: ins,
		})
		loc.Current += Length(ins)
	}

	if err = scanner.Err(); err != nil {
		return
	}

	prog = &Program{
		Statements: statements,
		Labels:     labels.Freeze(),
		Strict:     asm.Strict,
	}

	return
}

// Assemble runs both sweeps and returns the encoded bytes.
func (asm *Assembler) Assemble(input io.Reader) (code []byte, err error) {
	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	return prog.Encode()
}
