// Package image builds the fixed-size word images (spec.md C13) and
// renders them in the external .coe envelope, plus the human-readable
// listing.
package image

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mips32asm/coeasm/symtab"
)

// DefaultTotalWords is the default memory image size in 32-bit words.
const DefaultTotalWords = 16384

// WriteTextImage renders the .text segment's machine words as a .coe
// file. Out-of-range writes (beyond TotalWords) are silently dropped.
func WriteTextImage(w io.Writer, instructions []*symtab.Instruction, totalWords int) error {
	mem := make([]uint32, totalWords)
	for _, inst := range instructions {
		wordAddr := int(inst.Address / 4)
		for k, mc := range inst.MachineCode {
			idx := wordAddr + k
			if idx >= 0 && idx < totalWords {
				mem[idx] = uint32(mc)
			}
		}
	}
	return writeCOE(w, mem)
}

// WriteDataImage renders the .data segment's byte stream as a .coe
// file, packing four bytes per word, little-endian. Bytes are placed
// into a flat byte image by absolute address first so that a data
// record whose length isn't a multiple of 4 doesn't corrupt the word
// shared with the next record.
func WriteDataImage(w io.Writer, data []*symtab.Data, totalWords int) error {
	byteImage := make([]byte, totalWords*4)
	for _, rec := range data {
		base := int(rec.Address)
		for i, b := range rec.RawData {
			addr := base + i
			if addr >= 0 && addr < len(byteImage) {
				byteImage[addr] = b
			}
		}
	}

	mem := make([]uint32, totalWords)
	for i := 0; i < totalWords; i++ {
		o := i * 4
		mem[i] = uint32(byteImage[o]) | uint32(byteImage[o+1])<<8 | uint32(byteImage[o+2])<<16 | uint32(byteImage[o+3])<<24
	}
	return writeCOE(w, mem)
}

func writeCOE(w io.Writer, mem []uint32) error {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "memory_initialization_radix = 16;\nmemory_initialization_vector =\n")
	for i, v := range mem {
		sep := byte(',')
		if i == len(mem)-1 {
			sep = ';'
		}
		fmt.Fprintf(bw, "%08x%c\n", v, sep)
	}
	return bw.Flush()
}

// WriteListing renders the human-readable code/data segment listing
// (spec.md §6): one row per machine word, then one row per data byte.
func WriteListing(w io.Writer, instructions []*symtab.Instruction, data []*symtab.Data) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "Code Segment\n          Machine code\n")
	fmt.Fprint(bw, "Offset    hex       bin                               \tassembly\n")
	for _, inst := range instructions {
		offset := inst.Address
		for _, mc := range inst.MachineCode {
			fmt.Fprintf(bw, "%08x  %08x  %032b\t%s\n", offset, uint32(mc), uint32(mc), inst.Assembly)
			offset += 4
		}
	}

	fmt.Fprint(bw, "\nData Segment\n          Raw data\n")
	fmt.Fprint(bw, "Offset    hex bin     \tassembly\n")
	for _, rec := range data {
		offset := rec.Address
		for _, b := range rec.RawData {
			fmt.Fprintf(bw, "%08x  %02x  %08b\t%s\n", offset, b, b, rec.Assembly)
			offset++
		}
	}

	return bw.Flush()
}
