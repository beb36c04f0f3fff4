package numfmt

import (
	"math"
	"math/big"
	"math/rand"
	"testing"
)

func TestNewExtFloat(t *testing.T) {
	t.Run("float64", func(t *testing.T) {
		tests := []struct {
			f    float64
			want extFloat
		}{
			{1, extFloat{1 << 52, -52}},
			{1.5, extFloat{3 << 51, -52}},
			{2, extFloat{1 << 52, -51}},
			{math.MaxFloat64, extFloat{1<<53 - 1, 971}},
			{math.SmallestNonzeroFloat64, extFloat{1, -1074}},
			{0x1p-1022, extFloat{1 << 52, -1074}},
			{math.Float64frombits(0x000FFFFFFFFFFFFF), extFloat{1<<52 - 1, -1074}},
		}
		for _, tt := range tests {
			got := newExtFloat(math.Float64bits(tt.f), &float64info)
			if got != tt.want {
				t.Errorf("newExtFloat(%v) = %+v, want %+v", tt.f, got, tt.want)
			}
		}
	})

	t.Run("float32", func(t *testing.T) {
		tests := []struct {
			f    float32
			want extFloat
		}{
			{1, extFloat{1 << 23, -23}},
			{math.MaxFloat32, extFloat{1<<24 - 1, 104}},
			{math.SmallestNonzeroFloat32, extFloat{1, -149}},
			{0x1p-126, extFloat{1 << 23, -149}},
		}
		for _, tt := range tests {
			got := newExtFloat(uint64(math.Float32bits(tt.f)), &float32info)
			if got != tt.want {
				t.Errorf("newExtFloat(%v) = %+v, want %+v", tt.f, got, tt.want)
			}
		}
	})
}

func TestExtFloat_Normalize(t *testing.T) {
	tests := []struct {
		x, want extFloat
	}{
		{extFloat{1, -1074}, extFloat{1 << 63, -1137}},
		{extFloat{1 << 52, -52}, extFloat{1 << 63, -63}},
		{extFloat{3, 0}, extFloat{3 << 62, -62}},
		{extFloat{1 << 63, 5}, extFloat{1 << 63, 5}},
		{extFloat{math.MaxUint64, 0}, extFloat{math.MaxUint64, 0}},
	}
	for _, tt := range tests {
		got := tt.x
		got.normalize()
		if got != tt.want {
			t.Errorf("%+v.normalize() = %+v, want %+v", tt.x, got, tt.want)
		}
	}
}

func TestExtFloat_Boundaries(t *testing.T) {
	t.Run("one", func(t *testing.T) {
		x := newExtFloat(math.Float64bits(1), &float64info)
		lower, upper := x.boundaries(&float64info)
		wantLower := extFloat{(1<<54 - 1) << 9, -63}
		wantUpper := extFloat{(1<<53 + 1) << 10, -63}
		if lower != wantLower || upper != wantUpper {
			t.Errorf("%+v.boundaries() = %+v, %+v, want %+v, %+v", x, lower, upper, wantLower, wantUpper)
		}
	})

	t.Run("distance", func(t *testing.T) {
		tests := []struct {
			f        float64
			powerOf2 bool
		}{
			{1, true},
			{0x1p52, true},
			{0x1p-1000, true},
			{0x1p1023, true},
			{1.5, false},
			{0.1, false},
			{math.MaxFloat64, false},
			{math.SmallestNonzeroFloat64, false},
			{math.Float64frombits(0x000FFFFFFFFFFFFF), false},
			{0x1p-1074 * 6, false},
		}
		for _, tt := range tests {
			w := newExtFloat(math.Float64bits(tt.f), &float64info)
			lower, upper := w.boundaries(&float64info)
			w.normalize()
			if lower.exp != w.exp || upper.exp != w.exp {
				t.Errorf("boundaries(%v) have exponents %v, %v, want %v", tt.f, lower.exp, upper.exp, w.exp)
				continue
			}
			above, below := upper.mant-w.mant, w.mant-lower.mant
			want := above
			if tt.powerOf2 {
				want = above / 2
			}
			if below != want {
				t.Errorf("boundaries(%v) are %v below and %v above, want %v below", tt.f, below, above, want)
			}
		}
	})

	t.Run("float32", func(t *testing.T) {
		for _, f := range []float32{1, 0x1p-126, 0.1, math.MaxFloat32, math.SmallestNonzeroFloat32} {
			w := newExtFloat(uint64(math.Float32bits(f)), &float32info)
			lower, upper := w.boundaries(&float32info)
			w.normalize()
			if upper.mant>>63 != 1 {
				t.Errorf("boundaries(%v) upper = %+v is not normalized", f, upper)
			}
			if lower.exp != w.exp || upper.exp != w.exp {
				t.Errorf("boundaries(%v) have exponents %v, %v, want %v", f, lower.exp, upper.exp, w.exp)
			}
			if lower.mant >= w.mant || w.mant >= upper.mant {
				t.Errorf("boundaries(%v) = %+v, %+v do not bracket %+v", f, lower, upper, w)
			}
		}
	})
}

func TestExtFloat_Mul(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, y, want extFloat
		}{
			{extFloat{1 << 63, 0}, extFloat{1 << 63, 0}, extFloat{1 << 62, 64}},
			{extFloat{1<<32 + 1, 0}, extFloat{1 << 63, 0}, extFloat{1<<31 + 1, 64}},   // half rounds up
			{extFloat{1<<33 + 1, -10}, extFloat{1 << 62, -20}, extFloat{1 << 31, 34}}, // quarter rounds down
			{extFloat{math.MaxUint64, -63}, extFloat{math.MaxUint64, -63}, extFloat{math.MaxUint64 - 1, -62}},
			{extFloat{1, 0}, extFloat{1, 0}, extFloat{0, 64}},
		}
		for _, tt := range tests {
			got := tt.x.mul(tt.y)
			if got != tt.want {
				t.Errorf("%+v.mul(%+v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		}
	})

	t.Run("random", func(t *testing.T) {
		r := rand.New(rand.NewSource(1))
		half := new(big.Int).Lsh(big.NewInt(1), 63)
		for i := 0; i < 10000; i++ {
			x := extFloat{r.Uint64(), r.Intn(200) - 100}
			y := extFloat{r.Uint64(), r.Intn(200) - 100}
			got := x.mul(y)

			z := new(big.Int).SetUint64(x.mant)
			z.Mul(z, new(big.Int).SetUint64(y.mant))
			z.Add(z, half)
			z.Rsh(z, 64)
			want := extFloat{z.Uint64(), x.exp + y.exp + 64}
			if got != want {
				t.Errorf("%+v.mul(%+v) = %+v, want %+v", x, y, got, want)
			}
		}
	})
}
