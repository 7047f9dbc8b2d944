package profile

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()
	assert.Equal(t, 16384, p.TotalWords)
	assert.Equal(t, "prgmip32.coe", p.TextImageFile)
	assert.Equal(t, "dmem32.coe", p.DataImageFile)
	assert.Equal(t, "details.txt", p.ListingFile)
	assert.False(t, p.StrictImmediates)
}

func TestLoadProfileEmptyPathReturnsDefault(t *testing.T) {
	p, err := LoadProfile("")
	require.NoError(t, err)
	assert.Equal(t, DefaultProfile(), p)
}

func TestLoadProfileFromYAML(t *testing.T) {
	content := `
output_dir: /tmp/out
strict_immediates: true
`
	f, err := os.CreateTemp("", "profile-*.yaml")
	require.NoError(t, err)
	defer os.Remove(f.Name())
	_, err = f.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	p, err := LoadProfile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out", p.OutputDir)
	assert.True(t, p.StrictImmediates)
	// Unset fields still fall back to the defaults.
	assert.Equal(t, 16384, p.TotalWords)
	assert.Equal(t, "prgmip32.coe", p.TextImageFile)
}

func TestLoadProfileRejectsMissingFile(t *testing.T) {
	_, err := LoadProfile("/nonexistent/profile.yaml")
	assert.Error(t, err)
}

func TestLoadProfileRejectsMalformedYAML(t *testing.T) {
	f, err := os.CreateTemp("", "profile-*.yaml")
	require.NoError(t, err)
	defer os.Remove(f.Name())
	_, err = f.WriteString("not: [valid yaml")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = LoadProfile(f.Name())
	assert.Error(t, err)
}
