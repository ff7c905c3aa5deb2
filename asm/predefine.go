package asm

import (
	"math"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// predefine is a symbol bound before the first source line.
type predefine struct {
	Name string
	Expr string
}

// Predefine defines a new symbol or redefines an existing one. The
// expression is evaluated with starlark when Parse starts, and may refer to
// ORIGIN, BOOT_ORIGIN and earlier predefines.
func (asm *Assembler) Predefine(name string, expr string) {
	for n, pre := range asm.predefine {
		if pre.Name == name {
			asm.predefine[n].Expr = expr
			return
		}
	}
	asm.predefine = append(asm.predefine, predefine{Name: name, Expr: expr})
}

// predefined evaluates all predefines into a fresh label table.
func (asm *Assembler) predefined() (labels LabelTable, err error) {
	labels = LabelTable{}

	env := starlark.StringDict{
		"ORIGIN":      starlark.MakeInt(int(asm.Origin)),
		"BOOT_ORIGIN": starlark.MakeInt(BOOT_ORIGIN),
	}

	for _, pre := range asm.predefine {
		var value int64
		value, err = evalExpr(pre.Expr, env)
		if err != nil {
			err = &ErrPredefine{Name: pre.Name, Err: err}
			return
		}
		if value < 0 || value > math.MaxUint16 {
			err = &ErrPredefine{Name: pre.Name, Err: ErrPredefineRange}
			return
		}
		labels.Bind(pre.Name, uint16(value))
		env[pre.Name] = starlark.MakeInt64(value)
	}

	return
}

// evalExpr evaluates a starlark integer expression.
func evalExpr(expr string, env starlark.StringDict) (value int64, err error) {
	thread := &starlark.Thread{Name: "predefine"}
	opts := syntax.FileOptions{}

	result, err := starlark.EvalOptions(&opts, thread, "expr", expr, env)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}

	st_int, ok := result.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}
