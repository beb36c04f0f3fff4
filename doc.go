/*
Package numfmt implements fast conversion of numbers to text.
It is specifically designed for programs that emit large volumes of numbers,
such as serializers, loggers, and data exporters.
Floats are converted with the [Grisu2] algorithm, integers with a
table-driven digit loop.

# Representation

Floats are written in the shortest form that parses back to the same value
in the vast majority of cases.
Grisu2 does not always find the shortest form: for fewer than one float in
a thousand, the result has one more digit than necessary.
It never produces a wrong result, so that

	strconv.ParseFloat(FormatFloat64(f), 64) == f

holds for every finite f.
The layout depends on the number of significant digits n, the decimal
exponent e of the last digit, and the decimal exponent x = e + n - 1 of
the leading digit:

	| Condition                  | Layout     | Example      |
	| -------------------------- | ---------- | ------------ |
	| e >= 0 and x < n + 7       | integer    | 12345678.0   |
	| e < 0 and e > -7           | decimal    | 0.000123     |
	| e < 0 and -4 < x < 4       | decimal    | 1.2345678    |
	| otherwise                  | scientific | 1e+8, 1.5e-7 |

Integral values always carry a ".0" suffix, and the exponent in scientific
notation always carries a sign and is never zero-padded.

Special values are written as follows:

  - 0 and -0: "0.0" and "-0.0".
  - NaN: "NaN", without sign.
  - Infinity: "inf" and "-inf".

The exponent marker, the NaN and Inf strings, and an explicit '+' sign
can be changed with [Options].

# Buffers

There are three families of functions:

  - Format: [FormatFloat64], [FormatFloat32], [FormatInt] return a string.
  - Append: [AppendFloat64], [AppendFloat32], [AppendInt] extend a slice,
    growing it if necessary.
  - Write: [WriteFloat64], [WriteFloat32], [WriteInt] fill a caller-owned
    buffer and report the number of bytes written.

Write functions check the length of the buffer once, before any digit is
produced, against the worst case for the type:
[Float64SizeDecimal], [Float32SizeDecimal], [FormattedSizeDecimal],
[FormattedSize] and [FormattedSizeRadix].
A buffer that is too small is rejected with an error even if
the particular number would fit.
The Must variants panic instead.

# Radix

Integers can be written in any radix from [MinRadix] to [MaxRadix]
using [WriteIntWithOptions] or [AppendIntWithOptions].
Digits above 9 are lowercase letters.
Floats support only radix 10.

# Errors

All functions are pure and safe for concurrent use.
Errors are returned in the following cases:

  - Buffer too small.
    The buffer passed to a Write function is shorter than the worst case.
  - Invalid options.
    See [Options.Validate].

[Grisu2]: https://www.cs.tufts.edu/~nr/cs257/archive/florian-loitsch/printf.pdf
*/
package numfmt
