package word

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRFormatFields(t *testing.T) {
	var w Word
	require.NoError(t, w.SetOp(0))
	require.NoError(t, w.SetRs(8))
	require.NoError(t, w.SetRt(9))
	require.NoError(t, w.SetRd(10))
	require.NoError(t, w.SetShamt(0))
	require.NoError(t, w.SetFunc(0x20)) // ADD

	assert.EqualValues(t, 0, w.Op())
	assert.EqualValues(t, 8, w.Rs())
	assert.EqualValues(t, 9, w.Rt())
	assert.EqualValues(t, 10, w.Rd())
	assert.EqualValues(t, 0, w.Shamt())
	assert.EqualValues(t, 0x20, w.Func())
}

func TestSetOpRangeCheck(t *testing.T) {
	var w Word
	assert.Error(t, w.SetOp(0x40))
	assert.NoError(t, w.SetOp(0x3F))
}

func TestSetRegFieldRangeCheck(t *testing.T) {
	var w Word
	assert.Error(t, w.SetRs(32))
	assert.Error(t, w.SetRt(32))
	assert.Error(t, w.SetRd(32))
	assert.Error(t, w.SetShamt(32))
}

func TestImmediateRoundTrip(t *testing.T) {
	var w Word
	require.NoError(t, w.SetImmediate(5, false))
	assert.EqualValues(t, 5, w.Immediate())

	require.NoError(t, w.SetImmediate(-1, false))
	assert.EqualValues(t, -1, w.Immediate())
}

func TestSetImmediateDefaultRangeAllowsUnsignedUpper(t *testing.T) {
	var w Word
	assert.NoError(t, w.SetImmediate(65535, false))
	assert.Error(t, w.SetImmediate(65536, false))
	assert.Error(t, w.SetImmediate(-32769, false))
}

func TestSetImmediateStrictRangeIsSigned16(t *testing.T) {
	var w Word
	assert.NoError(t, w.SetImmediate(32767, true))
	assert.Error(t, w.SetImmediate(32768, true))
	assert.NoError(t, w.SetImmediate(-32768, true))
}

func TestSetAddress(t *testing.T) {
	var w Word
	require.NoError(t, w.SetAddress(0x3FFFFFF))
	assert.EqualValues(t, 0x3FFFFFF, w.Address())
	assert.Error(t, w.SetAddress(0x4000000))
}

func TestFieldsDoNotClobberEachOther(t *testing.T) {
	var w Word
	require.NoError(t, w.SetOp(0x08))
	require.NoError(t, w.SetRs(1))
	require.NoError(t, w.SetRt(2))
	require.NoError(t, w.SetImmediate(5, false))

	assert.EqualValues(t, 0x08, w.Op())
	assert.EqualValues(t, 1, w.Rs())
	assert.EqualValues(t, 2, w.Rt())
	assert.EqualValues(t, 5, w.Immediate())
	assert.EqualValues(t, 0x20220005, uint32(w))
}
