package assembler

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/mips32asm/coeasm/asmerr"
	"github.com/mips32asm/coeasm/directive"
	"github.com/mips32asm/coeasm/symtab"
	"github.com/mips32asm/coeasm/token"
)

// segment directives: ".text [N]" / ".data [N]", case-insensitive,
// matched after the comment is stripped; a line that starts with a
// label is not treated as a segment directive.
var segDirRe = regexp.MustCompile(`(?i)^\.(TEXT|DATA)\s*([^\s]*)\s*$`)

type segmentKind int

const (
	segNone segmentKind = iota
	segText
	segData
)

// splitSource reads the source file line by line and distributes its
// lines into an instruction list and a data list, honoring .text/.data
// segment directives and their optional zero-padding reservation
// counts. This is the "external" line reader + segment splitter
// spec.md §1 describes only at its interface: a thin glue layer, not a
// core component.
func splitSource(r io.Reader, file string) ([]*symtab.Instruction, []*symtab.Data, error) {
	var instructions []*symtab.Instruction
	var data []*symtab.Data
	seg := segNone

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		raw := scanner.Text()
		body := stripComment(raw)

		if m := segDirRe.FindStringSubmatch(strings.TrimSpace(body)); m != nil {
			kind := strings.ToUpper(m[1])
			if kind == "TEXT" {
				seg = segText
			} else {
				seg = segData
			}
			if m[2] != "" {
				if err := reserve(seg, m[2], &instructions, &data); err != nil {
					return nil, nil, err
				}
			}
			continue
		}

		if strings.TrimSpace(body) == "" {
			continue
		}

		switch seg {
		case segText:
			instructions = append(instructions, &symtab.Instruction{Assembly: raw, File: file, Line: lineNum})
		case segData:
			data = append(data, &symtab.Data{Assembly: raw, File: file, Line: lineNum})
		default:
			return nil, nil, asmerr.Structural("instruction outside segment at line %d", lineNum)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, asmerr.IO("cannot read input: %v", err)
	}
	return instructions, data, nil
}

// stripComment removes a trailing "# ..." comment, respecting neither
// quoting nor escaping (the grammar has no string literals).
func stripComment(line string) string {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		return line[:idx]
	}
	return line
}

func reserve(seg segmentKind, nStr string, instructions *[]*symtab.Instruction, data *[]*symtab.Data) error {
	n, err := token.ToUnumber(nStr, true)
	if err != nil {
		return err
	}
	var cursor uint32
	switch seg {
	case segText:
		inst := &symtab.Instruction{Done: true}
		if err := directive.ReserveText(inst, n, &cursor); err != nil {
			return err
		}
		*instructions = append(*instructions, inst)
	case segData:
		rec := &symtab.Data{Done: true}
		directive.ReserveData(rec, n, &cursor)
		*data = append(*data, rec)
	}
	return nil
}
