package assembler

import (
	"github.com/mips32asm/coeasm/asmerr"
	"github.com/mips32asm/coeasm/directive"
	"github.com/mips32asm/coeasm/encoder"
	"github.com/mips32asm/coeasm/macro"
	"github.com/mips32asm/coeasm/symtab"
	"github.com/mips32asm/coeasm/token"
)

// logFunc receives a per-line diagnostic; the driver sets the sticky
// error flag itself and keeps going.
type logFunc func(file string, line int, context string, err error)

// runDataPass processes the .data segment: labels, then .byte/.half/
// .word directives. Per spec.md §5, .data is processed before .text so
// data labels are visible to instruction encoders.
func runDataPass(list []*symtab.Data, symbols *symtab.SymbolTable, log logFunc) bool {
	var cursor uint32
	hasError := false

	for _, rec := range list {
		if rec.Done {
			rec.Address = cursor
			cursor += uint32(len(rec.RawData))
			continue
		}

		rec.Address = cursor
		assembly, err := extractLabelAndStripComment(cursor, rec.Assembly, symbols)
		if err != nil {
			log(rec.File, rec.Line, rec.Assembly, err)
			hasError = true
			rec.Done = true
			continue
		}
		assembly = token.Fold(assembly)

		if assembly != "" {
			if err := directive.Encode(assembly, rec, &cursor); err != nil {
				log(rec.File, rec.Line, rec.Assembly, err)
				hasError = true
			}
		}
		rec.Done = true
	}
	return hasError
}

// runTextPass processes the .text segment: labels, then R/I/J/macro
// instruction dispatch.
func runTextPass(list []*symtab.Instruction, symbols *symtab.SymbolTable, refs *symtab.UnsolvedRefs, strict bool, log logFunc) bool {
	var cursor uint32
	hasError := false

	for _, rec := range list {
		if rec.Done {
			rec.Address = cursor
			cursor += 4 * uint32(len(rec.MachineCode))
			continue
		}

		rec.Address = cursor
		assembly, err := extractLabelAndStripComment(cursor, rec.Assembly, symbols)
		if err != nil {
			log(rec.File, rec.Line, rec.Assembly, err)
			hasError = true
			rec.Done = true
			continue
		}
		assembly = token.Fold(assembly)

		if assembly != "" {
			if err := dispatchInstruction(assembly, rec, refs, &cursor, strict); err != nil {
				log(rec.File, rec.Line, rec.Assembly, err)
				hasError = true
			}
			cursor += 4
		}
		rec.Done = true
	}
	return hasError
}

// dispatchInstruction allocates the instruction's first machine word
// and dispatches to the format encoder selected by its mnemonic.
func dispatchInstruction(assembly string, rec *symtab.Instruction, refs *symtab.UnsolvedRefs, cursor *uint32, strict bool) error {
	mnemonic := encoder.Mnemonic(assembly)
	idx := len(rec.MachineCode)
	rec.MachineCode = append(rec.MachineCode, 0)

	switch {
	case encoder.IsRFormatMnemonic(mnemonic):
		return encoder.RFormat(mnemonic, assembly, refs, rec, idx)
	case encoder.IsIFormatMnemonic(mnemonic):
		return encoder.IFormat(mnemonic, assembly, refs, rec, idx, strict)
	case encoder.IsJFormatMnemonic(mnemonic):
		return encoder.JFormat(mnemonic, assembly, refs, rec, idx)
	case encoder.IsMacroMnemonic(mnemonic):
		return macro.Expand(mnemonic, assembly, refs, rec, idx, cursor, strict)
	default:
		return asmerr.Structural("unknown instruction: %s", mnemonic)
	}
}
