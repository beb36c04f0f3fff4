package numfmt

import "fmt"

// MustWriteFloat64 is like [WriteFloat64] but panics if dst is too small.
func MustWriteFloat64(dst []byte, f float64) int {
	n, err := WriteFloat64(dst, f)
	if err != nil {
		panic(fmt.Sprintf("MustWriteFloat64(%v) failed: %v", f, err))
	}
	return n
}

// MustWriteFloat32 is like [WriteFloat32] but panics if dst is too small.
func MustWriteFloat32(dst []byte, f float32) int {
	n, err := WriteFloat32(dst, f)
	if err != nil {
		panic(fmt.Sprintf("MustWriteFloat32(%v) failed: %v", f, err))
	}
	return n
}

// MustWriteInt is like [WriteInt] but panics if dst is too small.
func MustWriteInt[T Integer](dst []byte, v T) int {
	n, err := WriteInt(dst, v)
	if err != nil {
		panic(fmt.Sprintf("MustWriteInt(%v) failed: %v", v, err))
	}
	return n
}
