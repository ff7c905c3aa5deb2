package asm

import (
	"maps"
)

// LabelTable maps label names (case sensitive) to addresses.
type LabelTable map[string]uint16

// Bind sets the address of name. If name was already bound, its previous
// address is returned with duplicate set; the new address still wins.
func (lt LabelTable) Bind(name string, addr uint16) (previous uint16, duplicate bool) {
	previous, duplicate = lt[name]
	lt[name] = addr
	return
}

// Resolve returns the address of name.
func (lt LabelTable) Resolve(name string) (addr uint16, err error) {
	addr, ok := lt[name]
	if !ok {
		err = ErrLabelMissing(name)
	}
	return
}

// Freeze returns a copy of the table that later Binds do not affect.
func (lt LabelTable) Freeze() LabelTable {
	if lt == nil {
		return LabelTable{}
	}
	return maps.Clone(lt)
}
