// Package register resolves MIPS register tokens ($N or a mnemonic
// alias) to their 0-31 index.
package register

import (
	"strconv"
	"strings"

	"github.com/mips32asm/coeasm/asmerr"
)

// aliases maps every mnemonic register name to its index. Synonym
// pairs (k0/i0, k1/i1, gp/s9, fp/s8) resolve to the same index.
var aliases = map[string]int{
	"ZERO": 0,
	"AT":   1,
	"V0":   2, "V1": 3,
	"A0": 4, "A1": 5, "A2": 6, "A3": 7,
	"T0": 8, "T1": 9, "T2": 10, "T3": 11, "T4": 12, "T5": 13, "T6": 14, "T7": 15,
	"S0": 16, "S1": 17, "S2": 18, "S3": 19, "S4": 20, "S5": 21, "S6": 22, "S7": 23,
	"T8": 24, "T9": 25,
	"K0": 26, "I0": 26,
	"K1": 27, "I1": 27,
	"GP": 28, "S9": 28,
	"SP": 29,
	"FP": 30, "S8": 30,
	"RA": 31,
}

// Resolve parses a $-prefixed register token. The remainder is tried
// first as a decimal index in [0,31], then case-insensitively against
// the alias table.
func Resolve(tok string) (int, error) {
	if !strings.HasPrefix(tok, "$") {
		return 0, asmerr.Lexical("not a register: %q", tok)
	}
	rest := tok[1:]

	if idx, err := strconv.Atoi(rest); err == nil {
		if idx >= 0 && idx <= 31 {
			return idx, nil
		}
		return 0, asmerr.Lexical("not a register: %q", tok)
	}

	if idx, ok := aliases[strings.ToUpper(rest)]; ok {
		return idx, nil
	}
	return 0, asmerr.Lexical("not a register: %q", tok)
}

// Is reports whether tok resolves to a register without returning an error.
func Is(tok string) bool {
	_, err := Resolve(tok)
	return err == nil
}
