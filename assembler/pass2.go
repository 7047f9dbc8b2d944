package assembler

import (
	"sort"

	"github.com/mips32asm/coeasm/asmerr"
	"github.com/mips32asm/coeasm/encoder"
	"github.com/mips32asm/coeasm/symtab"
)

// runPass2 drains the unresolved-reference table, locating each
// symbol's address and back-patching the field implied by its role
// (spec.md §4.12) or, for whole-value references, by the already-
// stored opcode of the target word.
func runPass2(refs *symtab.UnsolvedRefs, symbols *symtab.SymbolTable, strict bool, log logFunc) bool {
	hasError := false

	entries := refs.Entries()
	symbolNames := make([]string, 0, len(entries))
	for name := range entries {
		symbolNames = append(symbolNames, name)
	}
	sort.Strings(symbolNames) // deterministic diagnostic order

	for _, symbol := range symbolNames {
		addr, ok := symbols.Lookup(symbol)
		if !ok {
			log("", 0, symbol, asmerr.Symbolic("undefined symbol: %s", symbol))
			hasError = true
			continue
		}
		for _, ref := range entries[symbol] {
			if err := patchReference(ref, addr, strict); err != nil {
				log(ref.Instruction.File, ref.Instruction.Line, "resolving "+symbol, err)
				hasError = true
			}
		}
	}
	return hasError
}

func patchReference(ref symtab.Reference, addr uint32, strict bool) error {
	w := &ref.Instruction.MachineCode[ref.WordIndex]

	switch ref.Role {
	case symtab.PatchHigh:
		return w.SetImmediate(int64(addr>>16), strict)
	case symtab.PatchLow:
		return w.SetImmediate(int64(addr&0xFFFF), strict)
	}

	switch encoder.FormatOfWord(*w) {
	case encoder.FormatR:
		return w.SetShamt(addr)
	case encoder.FormatJ:
		return w.SetAddress(addr >> 2)
	case encoder.FormatI:
		imm := int64(addr)
		if encoder.IsBranchOpcode(w.Op()) {
			instWordAddr := ref.Instruction.Address + uint32(ref.WordIndex)*4
			imm = (int64(addr) - int64(instWordAddr+4)) >> 2
			strict = false // branch offsets keep the wider range, as in Pass-1
		} else if w.Op()>>4 == 0b10 {
			strict = false // so do load/store offsets
		}
		return w.SetImmediate(imm, strict)
	default:
		return asmerr.Structural("unknown instruction format during symbol resolution")
	}
}
