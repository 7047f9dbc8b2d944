package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mips32asm/coeasm/symtab"
)

func TestIsDataDirective(t *testing.T) {
	assert.True(t, IsDataDirective(".WORD 1, 2, 3"))
	assert.True(t, IsDataDirective(".byte 0xFF"))
	assert.False(t, IsDataDirective("ADD $t0, $t1, $t2"))
}

func TestEncodeWordLittleEndian(t *testing.T) {
	data := &symtab.Data{}
	var cursor uint32
	require.NoError(t, Encode(".WORD 0x12345678", data, &cursor))

	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, data.RawData)
	assert.EqualValues(t, 4, cursor)
}

func TestEncodeByteAndHalf(t *testing.T) {
	data := &symtab.Data{}
	var cursor uint32
	require.NoError(t, Encode(".BYTE 1, 2, 3", data, &cursor))
	assert.Equal(t, []byte{1, 2, 3}, data.RawData)
	assert.EqualValues(t, 3, cursor)

	data2 := &symtab.Data{}
	cursor = 0
	require.NoError(t, Encode(".HALF 0x1234", data2, &cursor))
	assert.Equal(t, []byte{0x34, 0x12}, data2.RawData)
	assert.EqualValues(t, 2, cursor)
}

func TestEncodeRepeatCount(t *testing.T) {
	data := &symtab.Data{}
	var cursor uint32
	require.NoError(t, Encode(".BYTE 0:4", data, &cursor))
	assert.Equal(t, []byte{0, 0, 0, 0}, data.RawData)
	assert.EqualValues(t, 4, cursor)
}

func TestEncodeMixedItems(t *testing.T) {
	data := &symtab.Data{}
	var cursor uint32
	require.NoError(t, Encode(".BYTE 1, 2:2, 3", data, &cursor))
	assert.Equal(t, []byte{1, 2, 2, 3}, data.RawData)
}

func TestEncodeRejectsNonNumericValue(t *testing.T) {
	data := &symtab.Data{}
	var cursor uint32
	assert.Error(t, Encode(".BYTE FOO", data, &cursor))
}

func TestEncodeUnknownDirective(t *testing.T) {
	data := &symtab.Data{}
	var cursor uint32
	assert.Error(t, Encode(".QUAD 1", data, &cursor))
}

func TestReserveData(t *testing.T) {
	data := &symtab.Data{}
	var cursor uint32 = 4
	ReserveData(data, 8, &cursor)
	assert.Len(t, data.RawData, 8)
	assert.EqualValues(t, 12, cursor)
}

func TestReserveText(t *testing.T) {
	inst := &symtab.Instruction{}
	var cursor uint32
	require.NoError(t, ReserveText(inst, 8, &cursor))
	assert.Len(t, inst.MachineCode, 2)
	assert.EqualValues(t, 8, cursor)
}

func TestReserveTextRejectsUnalignedSize(t *testing.T) {
	inst := &symtab.Instruction{}
	var cursor uint32
	assert.Error(t, ReserveText(inst, 6, &cursor))
}
