// Package directive encodes the .byte/.half/.word data directives
// (spec.md C10) into little-endian byte streams, and the .text N /
// .data N zero-padding reservation forms.
package directive

import (
	"regexp"
	"strings"

	"github.com/mips32asm/coeasm/asmerr"
	"github.com/mips32asm/coeasm/symtab"
	"github.com/mips32asm/coeasm/token"
	"github.com/mips32asm/coeasm/word"
)

var typeRe = regexp.MustCompile(`(?i)^\.(BYTE|HALF|WORD)\s+(.+)$`)

// IsDataDirective reports whether line opens a .byte/.half/.word directive.
func IsDataDirective(line string) bool {
	return typeRe.MatchString(line)
}

// Encode parses a .byte/.half/.word line and appends its little-endian
// byte stream to data.RawData, advancing *cursor by the bytes written.
func Encode(line string, data *symtab.Data, cursor *uint32) error {
	m := typeRe.FindStringSubmatch(line)
	if m == nil {
		return asmerr.Structural("unknown data directive: %s", line)
	}
	typ := strings.ToUpper(m[1])
	size := map[string]uint32{"BYTE": 1, "HALF": 2, "WORD": 4}[typ]

	items := strings.Split(m[2], ",")
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		valStr, repStr, hasRep := strings.Cut(item, ":")
		valStr = strings.TrimSpace(valStr)

		repeat := uint32(1)
		if hasRep {
			repStr = strings.TrimSpace(repStr)
			if !token.IsPositive(repStr) {
				return asmerr.Lexical("expected a positive number, got %q", repStr)
			}
			r, err := token.ToUnumber(repStr, true)
			if err != nil {
				return err
			}
			repeat = r
		}

		if !token.IsNumber(valStr) {
			return asmerr.Lexical("expected a number, got %q", valStr)
		}
		val, err := token.ToNumber(valStr, true)
		if err != nil {
			return err
		}

		for i := uint32(0); i < repeat; i++ {
			data.RawData = appendLittleEndian(data.RawData, uint32(val), size)
			*cursor += size
		}
	}
	return nil
}

func appendLittleEndian(buf []byte, v uint32, size uint32) []byte {
	for i := uint32(0); i < size; i++ {
		buf = append(buf, byte(v>>(8*i)))
	}
	return buf
}

// ReserveData implements ".data N": N zero bytes.
func ReserveData(data *symtab.Data, n uint32, cursor *uint32) {
	data.RawData = append(data.RawData, make([]byte, n)...)
	*cursor += n
}

// ReserveText implements ".text N": N bytes of zero machine words. N
// must be a multiple of 4.
func ReserveText(inst *symtab.Instruction, n uint32, cursor *uint32) error {
	if n%4 != 0 {
		return asmerr.Alignment(".text size must be a multiple of 4")
	}
	inst.MachineCode = append(inst.MachineCode, make([]word.Word, n/4)...)
	*cursor += n
	return nil
}
