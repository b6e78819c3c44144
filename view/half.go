package view

import "math"

// binary16 layout: S | EEEEE | MMMMMMMMMM
const (
	halfSignMask = 0x8000
	halfExpMask  = 0x7C00
	halfMantMask = 0x03FF
	halfExpShift = 10
	halfExpBias  = 15
	halfExpMax   = 0x1F

	floatExpBias  = 127
	floatExpShift = 23
	floatExpMax   = 0xFF

	// mantissaShift widens a 10-bit binary16 mantissa to the 23-bit binary32 field.
	mantissaShift = floatExpShift - halfExpShift
)

// HalfToFloat32 widens the IEEE-754 binary16 value with bit pattern h to
// float32. The conversion is exact: every binary16 value, including signed
// zeros, subnormals and infinities, is representable in binary32. NaN
// payloads are carried into the high mantissa bits unchanged, so a quiet or
// signaling NaN keeps its kind.
func HalfToFloat32(h uint16) float32 {
	sign := uint32(h&halfSignMask) << 16
	exp := uint32(h&halfExpMask) >> halfExpShift
	mant := uint32(h & halfMantMask)

	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		// Subnormal: shift the leading one into the implicit bit position
		// and lower the exponent to match.
		e := uint32(floatExpBias - halfExpBias + 1)
		for mant&(1<<halfExpShift) == 0 {
			mant <<= 1
			e--
		}
		mant &= halfMantMask
		return math.Float32frombits(sign | e<<floatExpShift | mant<<mantissaShift)
	case halfExpMax:
		return math.Float32frombits(sign | floatExpMax<<floatExpShift | mant<<mantissaShift)
	default:
		e := exp + floatExpBias - halfExpBias
		return math.Float32frombits(sign | e<<floatExpShift | mant<<mantissaShift)
	}
}
