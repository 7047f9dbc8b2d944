// Package macro expands pseudo-instructions (mov, push, pop, nop) into
// one or more real R/I-format instructions, per spec.md §4.9. It owns
// the policy of allocating additional machine-code slots on the
// owning instruction and advancing the address cursor for each extra
// real instruction it emits.
package macro

import (
	"github.com/mips32asm/coeasm/asmerr"
	"github.com/mips32asm/coeasm/encoder"
	"github.com/mips32asm/coeasm/register"
	"github.com/mips32asm/coeasm/symtab"
	"github.com/mips32asm/coeasm/token"
)

// Expand rewrites the macro at inst.MachineCode[idx] (already
// allocated by the Pass-1 driver) into its real-instruction sequence,
// advancing *cursor by 4 for every machine word beyond the first.
func Expand(mnemonic, assembly string, refs *symtab.UnsolvedRefs, inst *symtab.Instruction, idx int, cursor *uint32, strict bool) error {
	op1, op2, op3 := encoder.Operands(assembly)

	switch mnemonic {
	case "NOP":
		if op1 != "" {
			return asmerr.Structural("operand error: NOP takes no operands")
		}
		return encoder.RFormat("SLL", "SLL $0, $0, 0", refs, inst, idx)

	case "PUSH":
		if op1 == "" || op2 != "" || op3 != "" {
			return asmerr.Structural("operand error: PUSH expects 1 operand")
		}
		idx2 := allocSlot(inst)
		*cursor += 4
		if err := encoder.IFormat("ADDI", "ADDI $sp, $sp, -4", refs, inst, idx, strict); err != nil {
			return err
		}
		return encoder.IFormat("SW", "SW "+op1+", 0($sp)", refs, inst, idx2, strict)

	case "POP":
		if op1 == "" || op2 != "" || op3 != "" {
			return asmerr.Structural("operand error: POP expects 1 operand")
		}
		idx2 := allocSlot(inst)
		*cursor += 4
		if err := encoder.IFormat("LW", "LW "+op1+", 0($sp)", refs, inst, idx, strict); err != nil {
			return err
		}
		return encoder.IFormat("ADDI", "ADDI $sp, $sp, 4", refs, inst, idx2, strict)

	case "MOV":
		return expandMov(op1, op2, op3, refs, inst, idx, cursor, strict)

	default:
		return asmerr.Structural("unknown instruction: %s", mnemonic)
	}
}

func allocSlot(inst *symtab.Instruction) int {
	inst.MachineCode = append(inst.MachineCode, 0)
	return len(inst.MachineCode) - 1
}

func expandMov(op1, op2, op3 string, refs *symtab.UnsolvedRefs, inst *symtab.Instruction, idx int, cursor *uint32, strict bool) error {
	if op3 != "" {
		return asmerr.Structural("operand error: MOV expects 2 operands")
	}

	switch {
	case register.Is(op1) && register.Is(op2):
		return encoder.RFormat("OR", "OR "+op1+", $0, "+op2, refs, inst, idx)

	case register.Is(op1) && token.IsMemory(op2):
		return encoder.IFormat("LW", "LW "+op1+", "+op2, refs, inst, idx, strict)

	case token.IsMemory(op1) && register.Is(op2):
		return encoder.IFormat("SW", "SW "+op2+", "+op1, refs, inst, idx, strict)

	case register.Is(op1) && (token.IsNumber(op2) || token.IsSymbol(op2)):
		return expandMovImmediate(op1, op2, refs, inst, idx, cursor, strict)

	default:
		return asmerr.Structural("operand error: unsupported MOV operand combination")
	}
}

// expandMovImmediate handles mov rd, imm|symbol. A small numeric
// literal (<=0xFFFF) becomes a single ORI; anything larger, or a
// symbol, becomes an LUI/ORI pair, each half patched independently
// per SPEC_FULL.md's open-question decision.
func expandMovImmediate(op1, op2 string, refs *symtab.UnsolvedRefs, inst *symtab.Instruction, idx int, cursor *uint32, strict bool) error {
	if token.IsNumber(op2) {
		v, err := token.ToUnumber(op2, true)
		if err != nil {
			return err
		}
		if v <= 0xFFFF {
			return encoder.IFormat("ORI", "ORI "+op1+", $0, "+op2, refs, inst, idx, strict)
		}
		idx2 := allocSlot(inst)
		*cursor += 4
		high := v >> 16
		low := v & 0xFFFF
		rd, err := register.Resolve(op1)
		if err != nil {
			return err
		}
		if err := setLUI(inst, idx, rd, int64(high), strict); err != nil {
			return err
		}
		return setORI(inst, idx2, rd, rd, int64(low), strict)
	}

	// Symbolic operand: split across LUI (high) and ORI (low).
	idx2 := allocSlot(inst)
	*cursor += 4
	rd, err := register.Resolve(op1)
	if err != nil {
		return err
	}
	if err := setLUI(inst, idx, rd, 0, strict); err != nil {
		return err
	}
	if err := setORI(inst, idx2, rd, rd, 0, strict); err != nil {
		return err
	}
	symbol := token.Fold(op2)
	refs.Add(symbol, inst, idx, symtab.PatchHigh)
	refs.Add(symbol, inst, idx2, symtab.PatchLow)
	return nil
}

func setLUI(inst *symtab.Instruction, idx int, rt int, imm int64, strict bool) error {
	w := &inst.MachineCode[idx]
	if err := w.SetOp(0x0F); err != nil {
		return err
	}
	if err := w.SetRt(uint32(rt)); err != nil {
		return err
	}
	return w.SetImmediate(imm, strict)
}

func setORI(inst *symtab.Instruction, idx int, rt, rs int, imm int64, strict bool) error {
	w := &inst.MachineCode[idx]
	if err := w.SetOp(0x0D); err != nil {
		return err
	}
	if err := w.SetRs(uint32(rs)); err != nil {
		return err
	}
	if err := w.SetRt(uint32(rt)); err != nil {
		return err
	}
	return w.SetImmediate(imm, strict)
}
