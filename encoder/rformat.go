package encoder

import (
	"github.com/mips32asm/coeasm/asmerr"
	"github.com/mips32asm/coeasm/register"
	"github.com/mips32asm/coeasm/symtab"
	"github.com/mips32asm/coeasm/token"
)

// rFuncCodes maps R-format mnemonics to their MIPS32 function codes.
var rFuncCodes = map[string]uint32{
	"ADD": 0x20, "ADDU": 0x21, "SUB": 0x22, "SUBU": 0x23,
	"AND": 0x24, "OR": 0x25, "XOR": 0x26, "NOR": 0x27,
	"SLT": 0x2A, "SLTU": 0x2B,
	"SLLV": 0x04, "SRLV": 0x06, "SRAV": 0x07,
	"SLL": 0x00, "SRL": 0x02, "SRA": 0x03,
	"MULT": 0x18, "MULTU": 0x19, "DIV": 0x1A, "DIVU": 0x1B,
	"JALR": 0x09, "JR": 0x08,
	"MFHI": 0x10, "MFLO": 0x12, "MTHI": 0x11, "MTLO": 0x13,
	"BREAK": 0x0D, "SYSCALL": 0x0C,
}

var threeOpArith = map[string]bool{
	"ADD": true, "ADDU": true, "SUB": true, "SUBU": true,
	"AND": true, "OR": true, "XOR": true, "NOR": true,
	"SLT": true, "SLTU": true,
}
var variableShift = map[string]bool{"SLLV": true, "SRLV": true, "SRAV": true}
var fixedShift = map[string]bool{"SLL": true, "SRL": true, "SRA": true}
var twoOpMulDiv = map[string]bool{"MULT": true, "MULTU": true, "DIV": true, "DIVU": true}
var oneOpRd = map[string]bool{"MFHI": true, "MFLO": true}
var oneOpRs = map[string]bool{"JR": true, "MTHI": true, "MTLO": true}
var zeroOp = map[string]bool{"BREAK": true, "SYSCALL": true}

// RFormat encodes an R-format instruction into inst.MachineCode[idx].
func RFormat(mnemonic, assembly string, refs *symtab.UnsolvedRefs, inst *symtab.Instruction, idx int) error {
	w := &inst.MachineCode[idx]

	if mnemonic == "ERET" {
		if err := w.SetOp(0b010000); err != nil {
			return err
		}
		if err := w.SetRs(0b10000); err != nil {
			return err
		}
		return w.SetFunc(0x18)
	}
	if err := w.SetOp(0); err != nil {
		return err
	}

	funcCode, known := rFuncCodes[mnemonic]
	if !known {
		return asmerr.Structural("unknown instruction: %s", mnemonic)
	}

	op1, op2, op3 := Operands(assembly)
	n := CountOperands(op1, op2, op3)

	switch {
	case threeOpArith[mnemonic]:
		if n != 3 {
			return asmerr.Structural("operand error: %s expects 3 operands", mnemonic)
		}
		if err := setRegField(w.SetRd, op1); err != nil {
			return err
		}
		if err := setRegField(w.SetRs, op2); err != nil {
			return err
		}
		if err := setRegField(w.SetRt, op3); err != nil {
			return err
		}
	case variableShift[mnemonic]:
		// Source order is rd, rt, rs; op2/op3 swap before encoding.
		if n != 3 {
			return asmerr.Structural("operand error: %s expects 3 operands", mnemonic)
		}
		if err := setRegField(w.SetRd, op1); err != nil {
			return err
		}
		if err := setRegField(w.SetRs, op3); err != nil {
			return err
		}
		if err := setRegField(w.SetRt, op2); err != nil {
			return err
		}
	case fixedShift[mnemonic]:
		if n != 3 {
			return asmerr.Structural("operand error: %s expects 3 operands", mnemonic)
		}
		if err := setRegField(w.SetRd, op1); err != nil {
			return err
		}
		if err := setRegField(w.SetRt, op2); err != nil {
			return err
		}
		if token.IsSymbol(op3) {
			if err := w.SetShamt(0); err != nil {
				return err
			}
			refs.Add(token.Fold(op3), inst, idx, symtab.PatchWhole)
		} else {
			shamt, err := token.ToUnumber(op3, true)
			if err != nil {
				return err
			}
			if err := w.SetShamt(shamt); err != nil {
				return err
			}
		}
	case twoOpMulDiv[mnemonic]:
		if n != 2 {
			return asmerr.Structural("operand error: %s expects 2 operands", mnemonic)
		}
		if err := setRegField(w.SetRs, op1); err != nil {
			return err
		}
		if err := setRegField(w.SetRt, op2); err != nil {
			return err
		}
	case mnemonic == "JALR":
		if n != 2 {
			return asmerr.Structural("operand error: JALR expects 2 operands")
		}
		if err := setRegField(w.SetRd, op1); err != nil {
			return err
		}
		if err := setRegField(w.SetRs, op2); err != nil {
			return err
		}
	case oneOpRd[mnemonic]:
		if n != 1 {
			return asmerr.Structural("operand error: %s expects 1 operand", mnemonic)
		}
		if err := setRegField(w.SetRd, op1); err != nil {
			return err
		}
	case oneOpRs[mnemonic]:
		if n != 1 {
			return asmerr.Structural("operand error: %s expects 1 operand", mnemonic)
		}
		if err := setRegField(w.SetRs, op1); err != nil {
			return err
		}
	case zeroOp[mnemonic]:
		if n != 0 {
			return asmerr.Structural("operand error: %s takes no operands", mnemonic)
		}
	default:
		return asmerr.Structural("unknown instruction: %s", mnemonic)
	}

	return w.SetFunc(funcCode)
}

// setRegField resolves a register token and writes it via setter.
func setRegField(setter func(uint32) error, tok string) error {
	idx, err := register.Resolve(tok)
	if err != nil {
		return err
	}
	return setter(uint32(idx))
}
