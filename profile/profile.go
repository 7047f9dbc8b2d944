// Package profile loads the assembler's YAML configuration, following
// the teacher's LoadProfile shape (open, decode, wrap errors) but
// pointed at gopkg.in/yaml.v3 instead of encoding/json.
package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mips32asm/coeasm/image"
)

// AssemblerProfile configures a single assembler run: image sizing,
// output file names, and the strict-immediate-range open-question
// decision from SPEC_FULL.md.
type AssemblerProfile struct {
	TotalWords       int    `yaml:"total_words"`
	OutputDir        string `yaml:"output_dir"`
	TextImageFile    string `yaml:"text_image_file"`
	DataImageFile    string `yaml:"data_image_file"`
	ListingFile      string `yaml:"listing_file"`
	StrictImmediates bool   `yaml:"strict_immediates"`
}

// DefaultProfile returns the profile used when no --config is given.
func DefaultProfile() *AssemblerProfile {
	return &AssemblerProfile{
		TotalWords:    image.DefaultTotalWords,
		OutputDir:     "./",
		TextImageFile: "prgmip32.coe",
		DataImageFile: "dmem32.coe",
		ListingFile:   "details.txt",
	}
}

// LoadProfile loads an AssemblerProfile from a YAML file. Keys absent
// from the file keep their DefaultProfile values; a total_words of 0 is
// replaced by the default, while other fields set explicitly to an
// empty or zero value stay so.
func LoadProfile(filename string) (*AssemblerProfile, error) {
	if filename == "" {
		return DefaultProfile(), nil
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	defer file.Close()

	prof := DefaultProfile()
	if err := yaml.NewDecoder(file).Decode(prof); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if prof.TotalWords == 0 {
		prof.TotalWords = image.DefaultTotalWords
	}
	return prof, nil
}
