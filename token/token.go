// Package token classifies and parses the lexical atoms of a source
// line: numbers, registers, symbols, and the offset(base) memory form.
package token

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mips32asm/coeasm/asmerr"
)

var (
	positiveRe = regexp.MustCompile(`^(?:\d+|0[xX][0-9a-fA-F]+)$`)
	symbolRe   = regexp.MustCompile(`^[A-Za-z0-9_.$]+$`)
	memoryRe   = regexp.MustCompile(`^([^()\s]+)\(([^()\s]+)\)$`)
)

// Fold uppercases a token for case-insensitive matching, mirroring the
// assembler's "uppercase folding" convention for mnemonics and symbols.
func Fold(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// IsPositive reports whether s is an unsigned decimal or 0x-hex literal.
func IsPositive(s string) bool {
	return positiveRe.MatchString(s)
}

// IsDecimal reports whether s is an unsigned decimal literal (no hex).
func IsDecimal(s string) bool {
	return regexp.MustCompile(`^\d+$`).MatchString(s)
}

// IsNumber reports whether s is IsPositive with an optional leading '-'.
func IsNumber(s string) bool {
	if strings.HasPrefix(s, "-") {
		return IsPositive(s[1:])
	}
	return IsPositive(s)
}

// isRegisterToken is a lightweight syntactic check ($-prefixed), used
// only to keep IsSymbol from accepting register tokens; full alias
// resolution lives in the register package.
func isRegisterToken(s string) bool {
	return strings.HasPrefix(s, "$") && len(s) > 1
}

// IsSymbol reports whether s is a legal identifier that is neither a
// number nor a register, and does not start with a digit.
func IsSymbol(s string) bool {
	if s == "" || !symbolRe.MatchString(s) {
		return false
	}
	if IsNumber(s) || isRegisterToken(s) {
		return false
	}
	r := rune(s[0])
	if r >= '0' && r <= '9' {
		return false
	}
	return true
}

// IsMemory reports whether s matches offset(base) where offset is a
// number or symbol and base looks like a register token.
func IsMemory(s string) bool {
	m := memoryRe.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	offset, base := m[1], m[2]
	if offset != "" && !IsNumber(offset) && !IsSymbol(offset) {
		return false
	}
	return isRegisterToken(base)
}

// SplitMemory splits an offset(base) token into its two parts. Callers
// must first confirm IsMemory.
func SplitMemory(s string) (offset, base string) {
	m := memoryRe.FindStringSubmatch(s)
	return m[1], m[2]
}

// ToNumber parses a signed literal. On signed-32 overflow it retries
// as unsigned and reinterprets the bit pattern; a further overflow is
// a *number out of range* error.
func ToNumber(s string, hexAllowed bool) (int32, error) {
	u, err := parse(s, hexAllowed, true)
	if err != nil {
		return 0, err
	}
	return int32(u), nil
}

// ToUnumber parses an unsigned literal with the same overflow policy.
func ToUnumber(s string, hexAllowed bool) (uint32, error) {
	return parse(s, hexAllowed, false)
}

func parse(s string, hexAllowed, signedContext bool) (uint32, error) {
	s = strings.TrimSpace(s)
	neg := false
	body := s
	if strings.HasPrefix(s, "-") {
		neg = true
		body = s[1:]
	}
	if !IsPositive(body) {
		return 0, asmerr.Lexical("expected a number, got %q", s)
	}
	if !hexAllowed && strings.HasPrefix(strings.ToLower(body), "0x") {
		return 0, asmerr.Lexical("hexadecimal not allowed here: %q", s)
	}

	base := 10
	digits := body
	if strings.HasPrefix(strings.ToLower(body), "0x") {
		base = 16
		digits = body[2:]
	}

	if !neg {
		v, err := strconv.ParseUint(digits, base, 64)
		if err != nil {
			return 0, asmerr.Lexical("number out of range: %q", s)
		}
		if v > 0xFFFFFFFF {
			return 0, asmerr.Lexical("number out of range: %q", s)
		}
		return uint32(v), nil
	}

	// Negative literal: only meaningful for decimal magnitudes, but a
	// hex magnitude is accepted too and reinterpreted the same way.
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil || v > 0x80000000 {
		return 0, asmerr.Lexical("number out of range: %q", s)
	}
	return uint32(-int64(v)), nil
}
