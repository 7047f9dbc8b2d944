// Package symtab holds the shared data model described in spec.md §3:
// instruction/data records, the symbol table, and the table of
// unresolved symbolic references back-patched in Pass-2.
package symtab

import (
	"github.com/mips32asm/coeasm/asmerr"
	"github.com/mips32asm/coeasm/word"
)

// Instruction is one source line in the .text segment. Address is a
// byte offset, always a multiple of 4. MachineCode holds one entry per
// real instruction emitted for this line — more than one only for
// macro expansions or a reserved ".text N".
type Instruction struct {
	Assembly    string
	File        string
	Line        int
	Address     uint32
	Done        bool
	MachineCode []word.Word
}

// Data is one source line in the .data segment. RawData is the
// little-endian byte stream this line contributes.
type Data struct {
	Assembly string
	File     string
	Line     int
	Address  uint32
	Done     bool
	RawData  []byte
}

// PatchRole distinguishes which half of a split 32-bit value a
// reference should receive at resolution time. PatchWhole covers the
// ordinary case (a single field gets the whole resolved value);
// PatchHigh/PatchLow implement the LUI/ORI split decided in
// SPEC_FULL.md's open questions.
type PatchRole int

const (
	PatchWhole PatchRole = iota
	PatchHigh
	PatchLow
)

// Reference is a back-patch location: a specific machine word within
// a specific instruction record, awaiting a symbol's address. Holding
// (record, index) rather than a raw pointer/iterator into the word
// slice keeps the handle stable across later appends to that slice
// (see SPEC_FULL.md's iterator-stability grounding).
type Reference struct {
	Instruction *Instruction
	WordIndex   int
	Role        PatchRole
}

// SymbolTable maps an uppercased symbol name to its byte address.
type SymbolTable struct {
	addrs map[string]uint32
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{addrs: make(map[string]uint32)}
}

// Define binds name to addr, failing if name is already bound.
func (t *SymbolTable) Define(name string, addr uint32) error {
	if _, ok := t.addrs[name]; ok {
		return asmerr.Symbolic("redefined symbol: %s", name)
	}
	t.addrs[name] = addr
	return nil
}

func (t *SymbolTable) Lookup(name string) (uint32, bool) {
	addr, ok := t.addrs[name]
	return addr, ok
}

// UnsolvedRefs accumulates Pass-1 symbolic operand references, keyed
// by the uppercased symbol name they depend on.
type UnsolvedRefs struct {
	refs map[string][]Reference
}

func NewUnsolvedRefs() *UnsolvedRefs {
	return &UnsolvedRefs{refs: make(map[string][]Reference)}
}

// Add records a reference to symbol at the given word index of inst.
func (u *UnsolvedRefs) Add(symbol string, inst *Instruction, wordIndex int, role PatchRole) {
	u.refs[symbol] = append(u.refs[symbol], Reference{Instruction: inst, WordIndex: wordIndex, Role: role})
}

// Entries returns the symbol -> references map for Pass-2 to drain.
func (u *UnsolvedRefs) Entries() map[string][]Reference {
	return u.refs
}
