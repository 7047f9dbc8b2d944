// Package word implements the 32-bit MIPS-standard machine word: bit
// masks, field setters/getters, and the range checks each setter
// enforces before writing.
package word

import "github.com/mips32asm/coeasm/asmerr"

// Word is a single 32-bit machine instruction:
// OP[31:26] | RS[25:21] | RT[20:16] | RD[15:11] | Shamt[10:6] | Func[5:0]
// with I-format aliasing RD|Shamt|Func as Immediate[15:0] and J-format
// aliasing RS|RT|RD|Shamt|Func as Address[25:0].
type Word uint32

const (
	opMask     = 0x3F
	regMask    = 0x1F
	immMask    = 0xFFFF
	addrMask   = 0x3FFFFFF
	opShift    = 26
	rsShift    = 21
	rtShift    = 16
	rdShift    = 11
	shamtShift = 6
)

func (w Word) Op() uint32    { return uint32(w>>opShift) & opMask }
func (w Word) Rs() uint32    { return uint32(w>>rsShift) & regMask }
func (w Word) Rt() uint32    { return uint32(w>>rtShift) & regMask }
func (w Word) Rd() uint32    { return uint32(w>>rdShift) & regMask }
func (w Word) Shamt() uint32 { return uint32(w>>shamtShift) & regMask }
func (w Word) Func() uint32  { return uint32(w) & opMask }
func (w Word) Immediate() int16 {
	return int16(uint32(w) & immMask)
}
func (w Word) Address() uint32 { return uint32(w) & addrMask }

func (w *Word) SetOp(v uint32) error {
	if v > opMask {
		return asmerr.NumericRange("OP", int64(v), "number too large for field OP: %d", v)
	}
	*w = Word(uint32(*w)&^(opMask<<opShift) | (v << opShift))
	return nil
}

func (w *Word) SetRs(v uint32) error {
	if v > regMask {
		return asmerr.NumericRange("RS", int64(v), "number too large for field RS: %d", v)
	}
	*w = Word(uint32(*w)&^(regMask<<rsShift) | (v << rsShift))
	return nil
}

func (w *Word) SetRt(v uint32) error {
	if v > regMask {
		return asmerr.NumericRange("RT", int64(v), "number too large for field RT: %d", v)
	}
	*w = Word(uint32(*w)&^(regMask<<rtShift) | (v << rtShift))
	return nil
}

func (w *Word) SetRd(v uint32) error {
	if v > regMask {
		return asmerr.NumericRange("RD", int64(v), "number too large for field RD: %d", v)
	}
	*w = Word(uint32(*w)&^(regMask<<rdShift) | (v << rdShift))
	return nil
}

func (w *Word) SetShamt(v uint32) error {
	if v > regMask {
		return asmerr.NumericRange("Shamt", int64(v), "number too large for field Shamt: %d", v)
	}
	*w = Word(uint32(*w)&^(regMask<<shamtShift) | (v << shamtShift))
	return nil
}

func (w *Word) SetFunc(v uint32) error {
	if v > opMask {
		return asmerr.NumericRange("Func", int64(v), "number too large for field Func: %d", v)
	}
	*w = Word(uint32(*w)&^opMask | v)
	return nil
}

// SetImmediateRange checks v against the Immediate field's accepted
// range from SPEC_FULL.md's open-question decisions: [-32768, 65535]
// by default, or signed 16-bit [-32768, 32767] when strict.
// SetImmediate stores the low 16 bits of an accepted value either way.
func SetImmediateRange(v int64, strict bool) error {
	if strict {
		if v < -32768 || v > 32767 {
			return asmerr.NumericRange("Immediate", v, "number too large for field Immediate: %d", v)
		}
		return nil
	}
	if v < -32768 || v > 65535 {
		return asmerr.NumericRange("Immediate", v, "number too large for field Immediate: %d", v)
	}
	return nil
}

func (w *Word) SetImmediate(v int64, strict bool) error {
	if err := SetImmediateRange(v, strict); err != nil {
		return err
	}
	*w = Word(uint32(*w)&^immMask | (uint32(v) & immMask))
	return nil
}

func (w *Word) SetAddress(v uint32) error {
	if v > addrMask {
		return asmerr.NumericRange("Address", int64(v), "number too large for field Address: %d", v)
	}
	*w = Word(uint32(*w)&^addrMask | (v & addrMask))
	return nil
}
