package numfmt

// emitDigits writes d to dst and returns the number of bytes written.
// The layout depends on the decimal exponent of the leading digit:
//
//	123.0       integer, if the exponent is non-negative and below n+7
//	0.000123    decimal, if the exponent is above -7 or the leading digit is within 10^±3
//	1.23e-7     scientific otherwise
//
// emitDigits assumes that dst can hold the longest of these forms.
func emitDigits(dst []byte, d *digits, expChar byte) int {
	n, k := d.n, d.exp
	exp := k + n - 1
	if exp < 0 {
		exp = -exp
	}

	// Integer with ".0" suffix
	if k >= 0 && exp < n+7 {
		copy(dst, d.buf[:n])
		for i := n; i < n+k; i++ {
			dst[i] = '0'
		}
		dst[n+k] = '.'
		dst[n+k+1] = '0'
		return n + k + 2
	}

	// Decimal without exponent
	if k < 0 && (k > -7 || exp < 4) {
		point := n + k
		if point > 0 {
			copy(dst, d.buf[:point])
			dst[point] = '.'
			copy(dst[point+1:], d.buf[point:n])
			return n + 1
		}
		// Leading zeros
		zeros := -point
		dst[0] = '0'
		dst[1] = '.'
		for i := 2; i < zeros+2; i++ {
			dst[i] = '0'
		}
		copy(dst[zeros+2:], d.buf[:n])
		return n + zeros + 2
	}

	// Scientific notation
	n = min(n, maxDigits)
	pos := 0
	dst[pos] = d.buf[0]
	pos++
	if n > 1 {
		dst[pos] = '.'
		pos++
		pos += copy(dst[pos:], d.buf[1:n])
	}
	dst[pos] = expChar
	pos++
	if k+n-1 < 0 {
		dst[pos] = '-'
	} else {
		dst[pos] = '+'
	}
	pos++
	return pos + emitExponent(dst[pos:], exp)
}

// emitExponent writes the decimal digits of 0 <= exp < 1000 without padding.
func emitExponent(dst []byte, exp int) int {
	switch {
	case exp < 10:
		dst[0] = byte('0' + exp)
		return 1
	case exp < 100:
		dst[0] = byte('0' + exp/10)
		dst[1] = byte('0' + exp%10)
		return 2
	default:
		dst[0] = byte('0' + exp/100)
		dst[1] = byte('0' + exp/10%10)
		dst[2] = byte('0' + exp%10)
		return 3
	}
}
