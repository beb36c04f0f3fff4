package numfmt

import (
	"math/bits"

	"github.com/shogo82148/int128"
)

// floatInfo describes the layout of an IEEE-754 binary format.
type floatInfo struct {
	mantbits uint // explicit mantissa bits
	expbits  uint // exponent bits
	bias     int  // exponent bias
	bitSize  int  // total width of the format
	size     int  // worst-case formatted length in bytes
}

var (
	float64info = floatInfo{mantbits: 52, expbits: 11, bias: -1023, bitSize: 64, size: Float64SizeDecimal}
	float32info = floatInfo{mantbits: 23, expbits: 8, bias: -127, bitSize: 32, size: Float32SizeDecimal}
)

// signMask returns the mask of the sign bit.
func (flt *floatInfo) signMask() uint64 {
	return 1 << (flt.mantbits + flt.expbits)
}

// hiddenBit returns the implicit leading bit of a normal mantissa.
func (flt *floatInfo) hiddenBit() uint64 {
	return 1 << flt.mantbits
}

// extFloat represents an unsigned binary floating-point number mant × 2^exp
// with a 64-bit mantissa.
type extFloat struct {
	mant uint64
	exp  int
}

// newExtFloat decomposes the bits of a positive finite float.
// Normal numbers get the hidden bit, subnormal numbers keep
// their mantissa as is and use the minimum exponent.
func newExtFloat(fbits uint64, flt *floatInfo) extFloat {
	hidden := flt.hiddenBit()
	mant := fbits & (hidden - 1)
	exp := int(fbits>>flt.mantbits) & (1<<flt.expbits - 1)
	if exp == 0 {
		return extFloat{mant: mant, exp: flt.bias + 1 - int(flt.mantbits)}
	}
	return extFloat{mant: mant | hidden, exp: exp + flt.bias - int(flt.mantbits)}
}

// normalize shifts the mantissa left until its most significant bit is set.
// normalize assumes that the mantissa is not 0.
func (x *extFloat) normalize() {
	shift := bits.LeadingZeros64(x.mant)
	x.mant <<= shift
	x.exp -= shift
}

// boundaries returns the normalized midpoints between x and its
// neighbours: lower towards the previous float, upper towards the next one.
// Both share the exponent of the normalized x.
// boundaries must be called before x is normalized.
func (x extFloat) boundaries(flt *floatInfo) (lower, upper extFloat) {
	hidden := flt.hiddenBit()

	// Upper boundary
	upper = extFloat{mant: x.mant<<1 + 1, exp: x.exp - 1}
	for upper.mant&(hidden<<1) == 0 {
		upper.mant <<= 1
		upper.exp--
	}
	shift := 64 - int(flt.mantbits) - 2
	upper.mant <<= shift
	upper.exp -= shift

	// Lower boundary.
	// The previous float of a power of two is twice as close.
	lshift := 1
	if x.mant == hidden {
		lshift = 2
	}
	lower = extFloat{mant: x.mant<<lshift - 1, exp: x.exp - lshift}
	lower.mant <<= lower.exp - upper.exp
	lower.exp = upper.exp

	return lower, upper
}

// mul calculates x * y rounded to 64 bits, half-up.
func (x extFloat) mul(y extFloat) extFloat {
	var z int128.Uint128
	z.H, z.L = bits.Mul64(x.mant, y.mant)
	z = z.Add(int128.Uint128{L: 1 << 63})
	return extFloat{mant: z.H, exp: x.exp + y.exp + 64}
}
