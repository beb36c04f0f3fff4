package numfmt

import "fmt"

// maxDigits is the capacity of the digit buffer.
// A 64-bit scaled mantissa never yields more than 18 significant digits.
const maxDigits = 18

// digits is a decimal value buf[:n] × 10^exp, where buf holds ASCII digits
// and buf[0] is the most significant one.
type digits struct {
	buf [maxDigits]byte
	n   int
	exp int
}

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]uint64{
	1,                          // 10^0
	10,                         // 10^1
	100,                        // 10^2
	1_000,                      // 10^3
	10_000,                     // 10^4
	100_000,                    // 10^5
	1_000_000,                  // 10^6
	10_000_000,                 // 10^7
	100_000_000,                // 10^8
	1_000_000_000,              // 10^9
	10_000_000_000,             // 10^10
	100_000_000_000,            // 10^11
	1_000_000_000_000,          // 10^12
	10_000_000_000_000,         // 10^13
	100_000_000_000_000,        // 10^14
	1_000_000_000_000_000,      // 10^15
	10_000_000_000_000_000,     // 10^16
	100_000_000_000_000_000,    // 10^17
	1_000_000_000_000_000_000,  // 10^18
	10_000_000_000_000_000_000, // 10^19
}

// grisu2 generates the digits of a positive finite non-zero float.
// Parsing the result back always yields the same float, and in the vast
// majority of cases the result is also the shortest such decimal.
func grisu2(fbits uint64, flt *floatInfo, d *digits) {
	w := newExtFloat(fbits, flt)
	lower, upper := w.boundaries(flt)
	w.normalize()

	c, exp10 := cachedPowerFor(upper.exp)
	w = w.mul(c)
	upper = upper.mul(c)
	lower = lower.mul(c)

	// Keep away from the boundaries, they were rounded by mul.
	lower.mant++
	upper.mant--

	d.n = 0
	d.exp = -exp10
	generateDigits(w, upper, lower, d)
}

// generateDigits emits the digits of upper until the remainder fits in
// the interval (lower, upper), then moves the last digit towards w.
// All three values must share the same exponent in the target window.
func generateDigits(w, upper, lower extFloat, d *digits) {
	wfrac := upper.mant - w.mant
	delta := upper.mant - lower.mant

	// Fixed point split: upper = int + frac / one
	shift := uint(-upper.exp)
	one := uint64(1) << shift
	intpart := upper.mant >> shift
	frac := upper.mant & (one - 1)

	// Integer part, at most 10 digits
	kappa := 10
	for kappa > 0 {
		div := pow10[kappa-1]
		digit := intpart / div
		if digit != 0 || d.n != 0 {
			d.buf[d.n] = byte(digit) + '0'
			d.n++
		}
		intpart -= digit * div
		kappa--
		if rest := intpart<<shift + frac; rest <= delta {
			d.exp += kappa
			d.round(delta, rest, div<<shift, wfrac)
			return
		}
	}

	// Fractional part
	for {
		frac *= 10
		delta *= 10
		kappa--
		digit := frac >> shift
		if digit != 0 || d.n != 0 {
			d.buf[d.n] = byte(digit) + '0'
			d.n++
		}
		frac &= one - 1
		if frac < delta {
			d.exp += kappa
			d.round(delta, frac, one, wfrac*pow10[-kappa])
			return
		}
	}
}

// round decrements the last digit while the result stays inside the
// interval and gets closer to w.
// rest is the distance to upper, ten is the weight of the last digit,
// and wfrac is the distance between upper and w.
func (d *digits) round(delta, rest, ten, wfrac uint64) {
	for rest < wfrac &&
		delta-rest >= ten &&
		(rest+ten < wfrac || wfrac-rest > rest+ten-wfrac) {
		if d.buf[d.n-1] == '0' {
			panic(fmt.Sprintf("round(%v, %v, %v, %v) failed: digit underflow in %q", delta, rest, ten, wfrac, d.buf[:d.n]))
		}
		d.buf[d.n-1]--
		rest += ten
	}
}
