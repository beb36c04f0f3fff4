package numfmt

import (
	"fmt"
	"unsafe"

	"golang.org/x/exp/slices"
)

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed is a constraint that permits any signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// mag is the absolute value of an integer of any width.
type mag uint64

const smallsString = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

const digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

// newMag returns the absolute value of v and its sign.
func newMag[T Integer](v T) (x mag, neg bool) {
	if v < 0 {
		return -mag(int64(v)), true
	}
	return mag(v), false
}

// prec returns length of x in decimal digits.
// prec assumes that 0 has one digit.
func (x mag) prec() int {
	left, right := 1, len(pow10)
	for left < right {
		mid := (left + right) / 2
		if uint64(x) < pow10[mid] {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// len returns length of x in digits of the given radix.
// len assumes that 0 has one digit.
func (x mag) len(radix int) int {
	if radix == 10 {
		return x.prec()
	}
	n := 1
	for b := mag(radix); x >= b; x /= b {
		n++
	}
	return n
}

// write writes the digits of x right to left into dst[:n],
// where n is x.len(radix), and returns n.
func (x mag) write(dst []byte, radix int) int {
	n := x.len(radix)
	pos := n
	if radix == 10 {
		for x >= 100 {
			i := x % 100 * 2
			x /= 100
			pos -= 2
			dst[pos] = smallsString[i]
			dst[pos+1] = smallsString[i+1]
		}
		i := x * 2
		pos--
		dst[pos] = smallsString[i+1]
		if x >= 10 {
			pos--
			dst[pos] = smallsString[i]
		}
		return n
	}
	b := mag(radix)
	for x >= b {
		q := x / b
		pos--
		dst[pos] = digitChars[x-q*b]
		x = q
	}
	pos--
	dst[pos] = digitChars[x]
	return n
}

// maxMag returns the largest absolute value of T.
func maxMag[T Integer]() mag {
	var zero T
	bits := unsafe.Sizeof(zero) * 8
	if ^zero < 0 {
		return 1 << (bits - 1)
	}
	return 1<<(bits-1) - 1 + 1<<(bits-1)
}

// FormattedSizeDecimal returns the minimum buffer length accepted by
// [WriteInt] for T.
// It covers a sign and the decimal digits of the largest magnitude of T.
func FormattedSizeDecimal[T Integer]() int {
	return FormattedSizeRadix[T](10)
}

// FormattedSize returns the minimum buffer length accepted by
// [WriteIntWithOptions] for T regardless of the radix.
// It covers a sign and the binary digits of the largest magnitude of T.
func FormattedSize[T Integer]() int {
	return FormattedSizeRadix[T](MinRadix)
}

// FormattedSizeRadix returns the minimum buffer length accepted by
// [WriteIntWithOptions] for T and the given radix.
// FormattedSizeRadix panics if radix is outside of [[MinRadix], [MaxRadix]].
func FormattedSizeRadix[T Integer](radix int) int {
	if radix < MinRadix || radix > MaxRadix {
		panic(fmt.Sprintf("FormattedSizeRadix(%v) failed: %v", radix, errInvalidRadix))
	}
	return maxMag[T]().len(radix) + 1
}

// FormatInt returns the decimal representation of v.
func FormatInt[T Integer](v T) string {
	var buf [24]byte
	opts := DefaultOptions()
	n := writeInt(buf[:], v, &opts)
	return string(buf[:n])
}

// AppendInt appends the decimal representation of v to dst
// and returns the extended buffer.
func AppendInt[T Integer](dst []byte, v T) []byte {
	opts := DefaultOptions()
	return appendInt(dst, v, &opts)
}

// AppendIntWithOptions is like [AppendInt] but uses the radix and sign
// of the given options.
// AppendIntWithOptions returns an error if the options are invalid.
func AppendIntWithOptions[T Integer](dst []byte, v T, opts Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return dst, err
	}
	opts = opts.withDefaults()
	return appendInt(dst, v, &opts), nil
}

// WriteInt writes the decimal representation of v to the beginning of dst
// and returns the number of bytes written.
//
// WriteInt returns an error if dst is shorter than [FormattedSizeDecimal]
// for T, even if the representation of v would fit.
func WriteInt[T Integer](dst []byte, v T) (int, error) {
	opts := DefaultOptions()
	return writeIntChecked(dst, v, &opts)
}

// WriteIntWithOptions is like [WriteInt] but uses the radix and sign
// of the given options.
//
// WriteIntWithOptions returns an error if:
//   - dst is shorter than [FormattedSizeRadix] for T and the radix;
//   - the options are invalid.
func WriteIntWithOptions[T Integer](dst []byte, v T, opts Options) (int, error) {
	if err := opts.Validate(); err != nil {
		return 0, err
	}
	opts = opts.withDefaults()
	return writeIntChecked(dst, v, &opts)
}

func appendInt[T Integer](dst []byte, v T, opts *Options) []byte {
	size := FormattedSizeRadix[T](opts.Radix)
	dst = slices.Grow(dst, size)
	pos := len(dst)
	n := writeInt(dst[pos:pos+size], v, opts)
	return dst[:pos+n]
}

func writeIntChecked[T Integer](dst []byte, v T, opts *Options) (int, error) {
	if size := FormattedSizeRadix[T](opts.Radix); len(dst) < size {
		return 0, fmt.Errorf("%T in radix %v needs a buffer of %v bytes, got %v: %w", v, opts.Radix, size, len(dst), errBufferTooSmall)
	}
	return writeInt(dst, v, opts), nil
}

// writeInt assumes that dst is large enough
// and that opts has no zero fields.
func writeInt[T Integer](dst []byte, v T, opts *Options) int {
	x, neg := newMag(v)
	pos := 0
	switch {
	case neg:
		dst[pos] = '-'
		pos++
	case opts.PlusSign:
		dst[pos] = '+'
		pos++
	}
	return pos + x.write(dst[pos:], opts.Radix)
}
