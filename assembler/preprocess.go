package assembler

import (
	"regexp"

	"github.com/mips32asm/coeasm/symtab"
	"github.com/mips32asm/coeasm/token"
)

// lineRe implements spec.md §4.4's line pre-processor pattern:
// an optional "label:" prefix (group 1), the instruction/directive
// body (group 2), and a trailing "# comment" stripped entirely.
var lineRe = regexp.MustCompile(`^\s*(?:(\S+?)\s*:)?\s*([^#]*?)\s*(?:#.*)?$`)

// extractLabelAndStripComment binds an optional leading label to
// address in symbols and returns the remaining assembly body.
func extractLabelAndStripComment(address uint32, line string, symbols *symtab.SymbolTable) (string, error) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return "", nil
	}
	if m[1] != "" {
		label := token.Fold(m[1])
		if err := symbols.Define(label, address); err != nil {
			return "", err
		}
	}
	return m[2], nil
}
