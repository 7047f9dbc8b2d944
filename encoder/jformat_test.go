package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mips32asm/coeasm/symtab"
)

func TestJFormatSymbolicTarget(t *testing.T) {
	inst := newInst()
	refs := symtab.NewUnsolvedRefs()
	require.NoError(t, JFormat("J", "J MAIN", refs, inst, 0))

	w := inst.MachineCode[0]
	assert.EqualValues(t, 0b000010, w.Op())
	assert.EqualValues(t, 0, w.Address())
	assert.Len(t, refs.Entries()["MAIN"], 1)
}

func TestJFormatJALOpcode(t *testing.T) {
	inst := newInst()
	refs := symtab.NewUnsolvedRefs()
	require.NoError(t, JFormat("JAL", "JAL MAIN", refs, inst, 0))
	assert.EqualValues(t, 0b000011, inst.MachineCode[0].Op())
}

func TestJFormatNumericTargetIsWrittenDirectly(t *testing.T) {
	inst := newInst()
	refs := symtab.NewUnsolvedRefs()
	require.NoError(t, JFormat("J", "J 0x1000", refs, inst, 0))
	assert.EqualValues(t, 0x1000, inst.MachineCode[0].Address())
}

func TestJFormatTooManyOperands(t *testing.T) {
	inst := newInst()
	refs := symtab.NewUnsolvedRefs()
	assert.Error(t, JFormat("J", "J MAIN, EXTRA", refs, inst, 0))
}

func TestJFormatUnknownMnemonic(t *testing.T) {
	inst := newInst()
	refs := symtab.NewUnsolvedRefs()
	assert.Error(t, JFormat("FOOBAR", "FOOBAR MAIN", refs, inst, 0))
}
