package encoder

import "strings"

// Mnemonic returns the first whitespace-delimited token of an
// assembly line.
func Mnemonic(assembly string) string {
	fields := strings.Fields(assembly)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Operands splits the comma-separated operand list following the
// mnemonic. Up to three operands are returned; missing ones are "".
// A memory operand like "4($sp)" is never split further since it
// contains no top-level comma.
func Operands(assembly string) (op1, op2, op3 string) {
	fields := strings.Fields(assembly)
	if len(fields) < 2 {
		return "", "", ""
	}
	rest := strings.Join(fields[1:], " ")
	parts := strings.Split(rest, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	switch len(parts) {
	case 1:
		return parts[0], "", ""
	case 2:
		return parts[0], parts[1], ""
	default:
		op3 = strings.Join(parts[2:], ",")
		return parts[0], parts[1], strings.TrimSpace(op3)
	}
}

// CountOperands reports how many of op1/op2/op3 are non-empty.
func CountOperands(op1, op2, op3 string) int {
	n := 0
	for _, o := range []string{op1, op2, op3} {
		if o != "" {
			n++
		}
	}
	return n
}
