package solver

import (
	"math/bits"
	"strings"
)

// Mask is a candidate set packed into bits 1..9 of a uint16.
type Mask uint16

// FullMask holds every candidate 1 through 9.
const FullMask Mask = 0x3FE

// MaskOf builds a mask containing the given values.
func MaskOf(vs ...uint8) Mask {
	var m Mask
	for _, v := range vs {
		m |= 1 << v
	}
	return m
}

// Has reports whether v is a candidate.
func (m Mask) Has(v uint8) bool { return m&(1<<v) != 0 }

// Count returns the number of candidates.
func (m Mask) Count() int { return bits.OnesCount16(uint16(m)) }

// Single returns the sole candidate, or 0 when the mask does not hold
// exactly one value.
func (m Mask) Single() uint8 {
	if m.Count() != 1 {
		return 0
	}
	return uint8(bits.TrailingZeros16(uint16(m)))
}

// Values lists the candidates in ascending order.
func (m Mask) Values() []uint8 {
	out := make([]uint8, 0, m.Count())
	for v := uint8(1); v <= 9; v++ {
		if m.Has(v) {
			out = append(out, v)
		}
	}
	return out
}

func (m Mask) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for v := uint8(1); v <= 9; v++ {
		if m.Has(v) {
			sb.WriteByte('0' + v)
		}
	}
	sb.WriteByte('}')
	return sb.String()
}
