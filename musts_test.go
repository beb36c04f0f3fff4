package numfmt

import (
	"math"
	"testing"
)

func TestMustWriteFloat64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		buf := make([]byte, Float64SizeDecimal)
		n := MustWriteFloat64(buf, -0.5)
		if got := string(buf[:n]); got != "-0.5" {
			t.Errorf("MustWriteFloat64(-0.5) wrote %q, want %q", got, "-0.5")
		}
	})

	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustWriteFloat64 with 8 bytes did not panic")
			}
		}()
		MustWriteFloat64(make([]byte, 8), 1)
	})
}

func TestMustWriteFloat32(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		buf := make([]byte, Float32SizeDecimal)
		n := MustWriteFloat32(buf, float32(math.Inf(1)))
		if got := string(buf[:n]); got != "inf" {
			t.Errorf("MustWriteFloat32(+Inf) wrote %q, want %q", got, "inf")
		}
	})

	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustWriteFloat32(nil, 1) did not panic")
			}
		}()
		MustWriteFloat32(nil, 1)
	})
}

func TestMustWriteInt(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		buf := make([]byte, FormattedSizeDecimal[int8]())
		n := MustWriteInt(buf, int8(-100))
		if got := string(buf[:n]); got != "-100" {
			t.Errorf("MustWriteInt(-100) wrote %q, want %q", got, "-100")
		}
	})

	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustWriteInt with 3 bytes did not panic")
			}
		}()
		MustWriteInt(make([]byte, 3), int8(1))
	})
}
