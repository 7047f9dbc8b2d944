package encoder

import (
	"github.com/mips32asm/coeasm/asmerr"
	"github.com/mips32asm/coeasm/symtab"
	"github.com/mips32asm/coeasm/token"
)

var jOpcodes = map[string]uint32{"J": 0b000010, "JAL": 0b000011}

// JFormat encodes a J-format instruction into inst.MachineCode[idx].
func JFormat(mnemonic, assembly string, refs *symtab.UnsolvedRefs, inst *symtab.Instruction, idx int) error {
	w := &inst.MachineCode[idx]
	op1, op2, op3 := Operands(assembly)
	if op2 != "" || op3 != "" {
		return asmerr.Structural("too many operands for %s", mnemonic)
	}
	opcode, ok := jOpcodes[mnemonic]
	if !ok {
		return asmerr.Structural("unknown instruction: %s", mnemonic)
	}
	if err := w.SetOp(opcode); err != nil {
		return err
	}

	if token.IsSymbol(op1) {
		refs.Add(token.Fold(op1), inst, idx, symtab.PatchWhole)
		return w.SetAddress(0)
	}
	if token.IsNumber(op1) {
		v, err := token.ToUnumber(op1, true)
		if err != nil {
			return err
		}
		Notify("numeric jump target used directly: %s", op1)
		return w.SetAddress(v)
	}
	return asmerr.Lexical("expected a number or symbol, got %q", op1)
}
