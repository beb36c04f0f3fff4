package numfmt

import "fmt"

// Options controls the textual form of formatted numbers.
// The zero value of every field selects its default,
// so the zero value of Options is equal to [DefaultOptions].
type Options struct {
	// Exponent is the marker of scientific notation, 'e' by default.
	Exponent byte

	// NaN is written for not-a-number values, "NaN" by default.
	// It must start with 'n' or 'N' and consist of printable ASCII
	// characters other than space.
	NaN string

	// Inf is written for infinite values after the sign, "inf" by default.
	// It must start with 'i' or 'I' and consist of printable ASCII
	// characters other than space.
	Inf string

	// PlusSign requests a '+' before non-negative numbers.
	PlusSign bool

	// Radix is the base of integers, 10 by default.
	// Floats only support radix 10.
	Radix int
}

const (
	MinRadix       = 2  // minimum radix of integers
	MaxRadix       = 36 // maximum radix of integers
	MaxSpecialSize = 50 // maximum length of NaN and Inf strings
)

// DefaultOptions returns the options used by functions
// without a WithOptions suffix.
func DefaultOptions() Options {
	return Options{
		Exponent: 'e',
		NaN:      "NaN",
		Inf:      "inf",
		Radix:    10,
	}
}

// withDefaults replaces zero fields of o with their defaults.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Exponent == 0 {
		o.Exponent = def.Exponent
	}
	if o.NaN == "" {
		o.NaN = def.NaN
	}
	if o.Inf == "" {
		o.Inf = def.Inf
	}
	if o.Radix == 0 {
		o.Radix = def.Radix
	}
	return o
}

// Validate returns an error if the options cannot produce
// unambiguous output.
// Zero fields are valid and stand for their defaults.
func (o Options) Validate() error {
	o = o.withDefaults()
	if o.Radix < MinRadix || o.Radix > MaxRadix {
		return fmt.Errorf("radix %v is outside of [%v, %v]: %w", o.Radix, MinRadix, MaxRadix, errInvalidRadix)
	}
	switch c := o.Exponent; {
	case c <= ' ' || c > '~':
		return fmt.Errorf("exponent marker %q is not a printable ASCII character: %w", c, errInvalidExponent)
	case '0' <= c && c <= '9', c == '+', c == '-', c == '.':
		return fmt.Errorf("exponent marker %q can be confused with a number: %w", c, errInvalidExponent)
	}
	if err := validateSpecial(o.NaN, 'n'); err != nil {
		return fmt.Errorf("NaN string %q: %w", o.NaN, err)
	}
	if err := validateSpecial(o.Inf, 'i'); err != nil {
		return fmt.Errorf("Inf string %q: %w", o.Inf, err)
	}
	return nil
}

// validateFloat is like [Options.Validate] but also requires radix 10.
func (o Options) validateFloat() error {
	if err := o.Validate(); err != nil {
		return err
	}
	if r := o.withDefaults().Radix; r != 10 {
		return fmt.Errorf("radix %v: %w", r, errRadixFloat)
	}
	return nil
}

// validateSpecial checks that s starts with the given lowercase letter
// in either case, consists of printable ASCII characters
// and fits in [MaxSpecialSize] bytes.
func validateSpecial(s string, first byte) error {
	switch {
	case len(s) > MaxSpecialSize:
		return fmt.Errorf("length %v exceeds %v: %w", len(s), MaxSpecialSize, errInvalidSpecial)
	case s[0] != first && s[0] != first-'a'+'A':
		return fmt.Errorf("must start with %q: %w", first, errInvalidSpecial)
	}
	for i := 1; i < len(s); i++ {
		if c := s[i]; c <= ' ' || c > '~' {
			return fmt.Errorf("character %q at position %v is not a printable ASCII character: %w", c, i, errInvalidSpecial)
		}
	}
	return nil
}
