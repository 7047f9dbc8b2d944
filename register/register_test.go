package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNumeric(t *testing.T) {
	idx, err := Resolve("$0")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = Resolve("$31")
	require.NoError(t, err)
	assert.Equal(t, 31, idx)

	_, err = Resolve("$32")
	assert.Error(t, err)
}

func TestResolveAliases(t *testing.T) {
	cases := map[string]int{
		"$zero": 0, "$at": 1, "$v0": 2, "$v1": 3,
		"$a0": 4, "$a3": 7,
		"$t0": 8, "$t7": 15,
		"$s0": 16, "$s7": 23,
		"$t8": 24, "$t9": 25,
		"$k0": 26, "$i0": 26,
		"$k1": 27, "$i1": 27,
		"$gp": 28, "$s9": 28,
		"$sp": 29,
		"$fp": 30, "$s8": 30,
		"$ra": 31,
	}
	for tok, want := range cases {
		idx, err := Resolve(tok)
		require.NoError(t, err, tok)
		assert.Equal(t, want, idx, tok)
	}
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	idx, err := Resolve("$T0")
	require.NoError(t, err)
	assert.Equal(t, 8, idx)
}

func TestResolveRejectsNonRegister(t *testing.T) {
	_, err := Resolve("t0")
	assert.Error(t, err)

	_, err = Resolve("$bogus")
	assert.Error(t, err)
}

func TestIs(t *testing.T) {
	assert.True(t, Is("$t0"))
	assert.False(t, Is("LOOP"))
}
