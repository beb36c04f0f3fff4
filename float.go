package numfmt

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

const (
	// Float64SizeDecimal is the minimum buffer length accepted by
	// [WriteFloat64] and [WriteFloat64WithOptions].
	// It covers a sign, 18 significant digits, a decimal point,
	// an exponent marker with its sign and 3 digits, or the longest
	// NaN or Inf string allowed by [Options].
	Float64SizeDecimal = 64

	// Float32SizeDecimal is the minimum buffer length accepted by
	// [WriteFloat32] and [WriteFloat32WithOptions].
	Float32SizeDecimal = 64
)

var (
	errBufferTooSmall  = errors.New("buffer too small")
	errInvalidRadix    = errors.New("invalid radix")
	errRadixFloat      = errors.New("floats support only radix 10")
	errInvalidExponent = errors.New("invalid exponent marker")
	errInvalidSpecial  = errors.New("invalid special value string")
)

// FormatFloat64 returns the shortest decimal representation of f that
// parses back to f, in most cases.
// Numbers whose leading digit has an exponent outside of a small range
// around 0 are written in scientific notation:
//
//	1.0
//	-0.25
//	12345678.0
//	0.000001
//	1e+8
//	1.5e-7
//	NaN
//	-inf
//
// Integral values always carry a ".0" suffix.
func FormatFloat64(f float64) string {
	var buf [Float64SizeDecimal]byte
	opts := DefaultOptions()
	n := writeFloat(buf[:], math.Float64bits(f), &float64info, &opts)
	return string(buf[:n])
}

// FormatFloat32 is like [FormatFloat64] but for float32.
// The result is the shortest decimal that parses back to f
// as a float32, in most cases.
// It differs from formatting the value widened to float64:
// FormatFloat32(0.1) is "0.1", whereas FormatFloat64(float64(float32(0.1)))
// is "0.10000000149011612".
func FormatFloat32(f float32) string {
	var buf [Float32SizeDecimal]byte
	opts := DefaultOptions()
	n := writeFloat(buf[:], uint64(math.Float32bits(f)), &float32info, &opts)
	return string(buf[:n])
}

// AppendFloat64 appends the representation of f produced by
// [FormatFloat64] to dst and returns the extended buffer.
func AppendFloat64(dst []byte, f float64) []byte {
	opts := DefaultOptions()
	return appendFloat(dst, math.Float64bits(f), &float64info, &opts)
}

// AppendFloat32 appends the representation of f produced by
// [FormatFloat32] to dst and returns the extended buffer.
func AppendFloat32(dst []byte, f float32) []byte {
	opts := DefaultOptions()
	return appendFloat(dst, uint64(math.Float32bits(f)), &float32info, &opts)
}

// AppendFloat64WithOptions is like [AppendFloat64] but uses the given options.
// AppendFloat64WithOptions returns an error if the options are invalid.
func AppendFloat64WithOptions(dst []byte, f float64, opts Options) ([]byte, error) {
	if err := opts.validateFloat(); err != nil {
		return dst, err
	}
	opts = opts.withDefaults()
	return appendFloat(dst, math.Float64bits(f), &float64info, &opts), nil
}

// AppendFloat32WithOptions is like [AppendFloat32] but uses the given options.
// AppendFloat32WithOptions returns an error if the options are invalid.
func AppendFloat32WithOptions(dst []byte, f float32, opts Options) ([]byte, error) {
	if err := opts.validateFloat(); err != nil {
		return dst, err
	}
	opts = opts.withDefaults()
	return appendFloat(dst, uint64(math.Float32bits(f)), &float32info, &opts), nil
}

// WriteFloat64 writes the representation of f produced by [FormatFloat64]
// to the beginning of dst and returns the number of bytes written.
//
// WriteFloat64 returns an error if dst is shorter than [Float64SizeDecimal],
// even if the representation of f would fit.
func WriteFloat64(dst []byte, f float64) (int, error) {
	opts := DefaultOptions()
	return writeFloatChecked(dst, math.Float64bits(f), &float64info, &opts)
}

// WriteFloat32 is like [WriteFloat64] but for float32.
// WriteFloat32 returns an error if dst is shorter than [Float32SizeDecimal].
func WriteFloat32(dst []byte, f float32) (int, error) {
	opts := DefaultOptions()
	return writeFloatChecked(dst, uint64(math.Float32bits(f)), &float32info, &opts)
}

// WriteFloat64WithOptions is like [WriteFloat64] but uses the given options.
//
// WriteFloat64WithOptions returns an error if:
//   - dst is shorter than [Float64SizeDecimal];
//   - the options are invalid or the radix is not 10.
func WriteFloat64WithOptions(dst []byte, f float64, opts Options) (int, error) {
	if err := opts.validateFloat(); err != nil {
		return 0, err
	}
	opts = opts.withDefaults()
	return writeFloatChecked(dst, math.Float64bits(f), &float64info, &opts)
}

// WriteFloat32WithOptions is like [WriteFloat32] but uses the given options.
func WriteFloat32WithOptions(dst []byte, f float32, opts Options) (int, error) {
	if err := opts.validateFloat(); err != nil {
		return 0, err
	}
	opts = opts.withDefaults()
	return writeFloatChecked(dst, uint64(math.Float32bits(f)), &float32info, &opts)
}

func appendFloat(dst []byte, fbits uint64, flt *floatInfo, opts *Options) []byte {
	dst = slices.Grow(dst, flt.size)
	pos := len(dst)
	n := writeFloat(dst[pos:pos+flt.size], fbits, flt, opts)
	return dst[:pos+n]
}

func writeFloatChecked(dst []byte, fbits uint64, flt *floatInfo, opts *Options) (int, error) {
	if len(dst) < flt.size {
		return 0, fmt.Errorf("float%v needs a buffer of %v bytes, got %v: %w", flt.bitSize, flt.size, len(dst), errBufferTooSmall)
	}
	return writeFloat(dst, fbits, flt, opts), nil
}

// writeFloat handles signs and special values, and delegates finite
// non-zero magnitudes to [formatFloat].
// writeFloat assumes that dst holds at least flt.size bytes
// and that opts has no zero fields.
func writeFloat(dst []byte, fbits uint64, flt *floatInfo, opts *Options) int {
	neg := fbits&flt.signMask() != 0
	fbits &^= flt.signMask()
	special := fbits>>flt.mantbits == 1<<flt.expbits-1

	// NaN
	if special && fbits&(flt.hiddenBit()-1) != 0 {
		return copy(dst, opts.NaN)
	}

	// Sign
	pos := 0
	switch {
	case neg:
		dst[pos] = '-'
		pos++
	case opts.PlusSign:
		dst[pos] = '+'
		pos++
	}

	// Magnitude
	switch {
	case special:
		pos += copy(dst[pos:], opts.Inf)
	case fbits == 0:
		pos += copy(dst[pos:], "0.0")
	default:
		pos += formatFloat(dst[pos:], fbits, flt, opts.Exponent)
	}
	return pos
}

// formatFloat writes the shortest round-trip representation of a positive,
// finite, non-zero float and returns the number of bytes written.
// formatFloat does not check its arguments.
func formatFloat(dst []byte, fbits uint64, flt *floatInfo, expChar byte) int {
	var d digits
	grisu2(fbits, flt, &d)
	return emitDigits(dst, &d, expChar)
}
