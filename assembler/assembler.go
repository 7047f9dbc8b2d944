// Package assembler drives the two-pass assembly pipeline: it reads a
// source file, splits it into .text/.data line lists, resolves labels
// and encodes instructions/data in Pass-1, then back-patches forward
// references in Pass-2.
package assembler

import (
	"fmt"
	"log"
	"os"

	"github.com/mips32asm/coeasm/asmerr"
	"github.com/mips32asm/coeasm/encoder"
	"github.com/mips32asm/coeasm/symtab"
)

// Options configures a single Assemble run.
type Options struct {
	// Strict tightens SetImmediate's accepted range to signed 16-bit
	// for arithmetic-immediate opcodes (SPEC_FULL.md open question 2).
	Strict bool
	Logger *log.Logger
}

// Result is the fully-resolved (or partially failed) output of a run.
type Result struct {
	Instructions []*symtab.Instruction
	Data         []*symtab.Data
	HasError     bool
}

// Assemble runs the full pipeline against the file at path.
func Assemble(path string, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "", 0)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, asmerr.IO("cannot open input: %v", err)
	}
	defer file.Close()

	instructions, data, err := splitSource(file, path)
	if err != nil {
		return nil, err
	}

	logLine := func(file string, line int, context string, err error) {
		if file != "" {
			logger.Printf("%s:%d: %v (%s)", file, line, err, context)
		} else {
			logger.Printf("%v (%s)", err, context)
		}
	}
	encoder.Notify = func(format string, args ...any) {
		logger.Printf("note: "+format, args...)
	}
	defer func() { encoder.Notify = func(string, ...any) {} }()

	symbols := symtab.NewSymbolTable()
	refs := symtab.NewUnsolvedRefs()

	dataErr := runDataPass(data, symbols, logLine)
	textErr := runTextPass(instructions, symbols, refs, opts.Strict, logLine)

	result := &Result{Instructions: instructions, Data: data}
	if dataErr || textErr {
		result.HasError = true
		return result, nil
	}

	if runPass2(refs, symbols, opts.Strict, logLine) {
		result.HasError = true
	}
	return result, nil
}

// Summary is a convenience formatter for the final exit-status message.
func Summary(result *Result) string {
	if result.HasError {
		return fmt.Sprintf("assembly failed: %d instructions, %d data records processed", len(result.Instructions), len(result.Data))
	}
	return fmt.Sprintf("assembly succeeded: %d instructions, %d data records processed", len(result.Instructions), len(result.Data))
}
