package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mips32asm/coeasm/encoder"
	"github.com/mips32asm/coeasm/symtab"
	"github.com/mips32asm/coeasm/word"
)

func TestRunPass2ResolvesBranchAsPCRelative(t *testing.T) {
	inst := &symtab.Instruction{Address: 0, MachineCode: make([]word.Word, 1)}
	require.NoError(t, inst.MachineCode[0].SetOp(0x04)) // BEQ

	symbols := symtab.NewSymbolTable()
	require.NoError(t, symbols.Define("END", 0x10))
	refs := symtab.NewUnsolvedRefs()
	refs.Add("END", inst, 0, symtab.PatchWhole)

	hasError := runPass2(refs, symbols, false, func(string, int, string, error) {})
	require.False(t, hasError)

	// (0x10 - (0 + 4)) >> 2 = 3
	assert.EqualValues(t, 3, inst.MachineCode[0].Immediate())
}

func TestRunPass2ResolvesJFormatAsWordScaledAbsolute(t *testing.T) {
	inst := &symtab.Instruction{Address: 0, MachineCode: make([]word.Word, 1)}
	require.NoError(t, inst.MachineCode[0].SetOp(0b000010)) // J

	symbols := symtab.NewSymbolTable()
	require.NoError(t, symbols.Define("MAIN", 0x100))
	refs := symtab.NewUnsolvedRefs()
	refs.Add("MAIN", inst, 0, symtab.PatchWhole)

	hasError := runPass2(refs, symbols, false, func(string, int, string, error) {})
	require.False(t, hasError)
	assert.EqualValues(t, 0x100>>2, inst.MachineCode[0].Address())
}

func TestRunPass2ResolvesRFormatShamt(t *testing.T) {
	inst := &symtab.Instruction{Address: 0, MachineCode: make([]word.Word, 1)}
	require.NoError(t, inst.MachineCode[0].SetOp(0))

	symbols := symtab.NewSymbolTable()
	require.NoError(t, symbols.Define("SHIFT", 7))
	refs := symtab.NewUnsolvedRefs()
	refs.Add("SHIFT", inst, 0, symtab.PatchWhole)

	hasError := runPass2(refs, symbols, false, func(string, int, string, error) {})
	require.False(t, hasError)
	assert.EqualValues(t, 7, inst.MachineCode[0].Shamt())
}

func TestRunPass2ResolvesArithImmAsAbsolute(t *testing.T) {
	inst := &symtab.Instruction{Address: 0, MachineCode: make([]word.Word, 1)}
	require.NoError(t, inst.MachineCode[0].SetOp(0x0D)) // ORI

	symbols := symtab.NewSymbolTable()
	require.NoError(t, symbols.Define("VAR", 0x40))
	refs := symtab.NewUnsolvedRefs()
	refs.Add("VAR", inst, 0, symtab.PatchWhole)

	hasError := runPass2(refs, symbols, false, func(string, int, string, error) {})
	require.False(t, hasError)
	assert.EqualValues(t, 0x40, inst.MachineCode[0].Immediate())
}

func TestRunPass2HighLowSplit(t *testing.T) {
	inst := &symtab.Instruction{Address: 0, MachineCode: make([]word.Word, 2)}
	symbols := symtab.NewSymbolTable()
	require.NoError(t, symbols.Define("TARGET", 0x12345678))
	refs := symtab.NewUnsolvedRefs()
	refs.Add("TARGET", inst, 0, symtab.PatchHigh)
	refs.Add("TARGET", inst, 1, symtab.PatchLow)

	hasError := runPass2(refs, symbols, false, func(string, int, string, error) {})
	require.False(t, hasError)
	assert.EqualValues(t, 0x1234, inst.MachineCode[0].Immediate())
	assert.EqualValues(t, 0x5678, inst.MachineCode[1].Immediate())
}

func TestRunPass2UndefinedSymbolIsReported(t *testing.T) {
	inst := &symtab.Instruction{MachineCode: make([]word.Word, 1)}
	symbols := symtab.NewSymbolTable()
	refs := symtab.NewUnsolvedRefs()
	refs.Add("MISSING", inst, 0, symtab.PatchWhole)

	var errs []error
	hasError := runPass2(refs, symbols, false, func(_ string, _ int, _ string, err error) { errs = append(errs, err) })
	assert.True(t, hasError)
	require.Len(t, errs, 1)
}

func TestFormatOfWordUsedByPass2(t *testing.T) {
	// Sanity check the format re-derivation pass2 relies on.
	var w word.Word
	require.NoError(t, w.SetOp(0x23)) // LW
	assert.Equal(t, encoder.FormatI, encoder.FormatOfWord(w))
}
