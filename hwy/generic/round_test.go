package generic

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ajroetker/hwy-fallback/hwy"
)

func TestNearbyInt(t *testing.T) {
	t.Run("ties to even", func(t *testing.T) {
		x := hwy.LoadTag(hwy.FixedTag256[float64]{}, []float64{1.5, -1.5, 2.5, -2.5})
		if diff := cmp.Diff([]float64{2, -2, 2, -2}, NearbyInt(x).Data()); diff != "" {
			t.Errorf("NearbyInt mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("sign of zero results", func(t *testing.T) {
		x := vec(0.4, -0.4, 0, negZero, 0.5, -0.5)
		want := []float64{0, negZero, 0, negZero, 0, negZero}
		if diff := cmp.Diff(want, NearbyInt(x).Data(), bitsEqual); diff != "" {
			t.Errorf("NearbyInt mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("large and special lanes", func(t *testing.T) {
		x := vec(0x1p52-0.5, 0x1p52, 0x1p52+1, -1e300, math.Inf(1), math.Inf(-1), math.NaN())
		want := []float64{0x1p52, 0x1p52, 0x1p52 + 1, -1e300, math.Inf(1), math.Inf(-1), math.NaN()}
		if diff := cmp.Diff(want, NearbyInt(x).Data(), cmpopts.EquateNaNs()); diff != "" {
			t.Errorf("NearbyInt mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestNearbyIntMatchesRoundToEven(t *testing.T) {
	r := newRand()

	t.Run("float64", func(t *testing.T) {
		xs := finite64(append(randomBits64(r, 1<<14), specials64...))
		for range 1 << 14 {
			// Values near the rounding boundaries.
			xs = append(xs, float64(r.IntN(1<<20)-1<<19)/4, r.NormFloat64()*1e6)
		}

		want := make([]float64, len(xs))
		for i, x := range xs {
			want[i] = math.RoundToEven(x)
		}
		if diff := cmp.Diff(want, NearbyInt(vec(xs...)).Data(), bitsEqual); diff != "" {
			t.Errorf("NearbyInt mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("float32", func(t *testing.T) {
		var xs []float32
		for _, x := range append(randomBits32(r, 1<<14), specials32...) {
			if !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0) {
				xs = append(xs, x)
			}
		}
		for range 1 << 14 {
			xs = append(xs, float32(r.IntN(1<<16)-1<<15)/4)
		}

		want := make([]float32, len(xs))
		for i, x := range xs {
			want[i] = float32(math.RoundToEven(float64(x)))
		}
		if diff := cmp.Diff(want, NearbyInt(vec(xs...)).Data(), bitsEqual); diff != "" {
			t.Errorf("NearbyInt mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestTrunc(t *testing.T) {
	t.Run("flint bound", func(t *testing.T) {
		x := vec(3.7, -3.7, 1.0e300)
		if diff := cmp.Diff([]float64{3, -3, 1e300}, Trunc(x).Data()); diff != "" {
			t.Errorf("Trunc mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("special lanes", func(t *testing.T) {
		x := vec(math.Inf(1), math.Inf(-1), math.NaN(), 0x1p53, -0x1p53+1, 0x1p51+0.5)
		want := []float64{math.Inf(1), math.Inf(-1), math.NaN(), 0x1p53, -0x1p53 + 1, 0x1p51}
		if diff := cmp.Diff(want, Trunc(x).Data(), cmpopts.EquateNaNs()); diff != "" {
			t.Errorf("Trunc mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("negative fractions truncate to positive zero", func(t *testing.T) {
		x := vec(-0.3, negZero, 0.3)
		if diff := cmp.Diff([]float64{0, 0, 0}, Trunc(x).Data(), bitsEqual); diff != "" {
			t.Errorf("Trunc mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("float32", func(t *testing.T) {
		x := vec[float32](3.7, -3.7, 1e30, 0x1p24-1, -8388607.5)
		want := []float32{3, -3, 1e30, 0x1p24 - 1, -8388607}
		if diff := cmp.Diff(want, Trunc(x).Data()); diff != "" {
			t.Errorf("Trunc mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestTruncProperties(t *testing.T) {
	r := newRand()
	xs := finite64(append(randomBits64(r, 1<<14), specials64...))
	for range 1 << 14 {
		xs = append(xs, r.NormFloat64()*1e3, r.NormFloat64()*1e17)
	}

	got := Trunc(vec(xs...))
	for i, x := range xs {
		tr := got.Lane(i)
		if tr != 0 && math.Signbit(tr) != math.Signbit(x) {
			t.Fatalf("Trunc(%v) = %v, sign differs", x, tr)
		}
		if math.Abs(tr) > math.Abs(x) {
			t.Fatalf("Trunc(%v) = %v, larger magnitude", x, tr)
		}
		if tr != math.Trunc(tr) {
			t.Fatalf("Trunc(%v) = %v, has a fractional part", x, tr)
		}
		if tr != math.Trunc(x) {
			t.Fatalf("Trunc(%v) = %v, want %v", x, tr, math.Trunc(x))
		}
	}
}

// dyadicGrid returns operand pairs whose quotients, products and
// differences are all exact in float64, so the results can be compared
// with the math package exactly.
func dyadicGrid() (xs, ys []float64) {
	for k := -400; k <= 400; k += 7 {
		for m := -40; m <= 40; m += 3 {
			if m == 0 {
				continue
			}
			xs = append(xs, float64(k)/8)
			ys = append(ys, float64(m)/4)
		}
	}
	return xs, ys
}

func TestFmod(t *testing.T) {
	t.Run("sign follows x", func(t *testing.T) {
		x := vec(5.5, -5.5, 5.5, -5.5, 1, 7)
		y := vec(2.0, 2, -2, -2, 0.25, 7)
		if diff := cmp.Diff([]float64{1.5, -1.5, 1.5, -1.5, 0, 0}, Fmod(x, y).Data()); diff != "" {
			t.Errorf("Fmod mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("grid", func(t *testing.T) {
		xs, ys := dyadicGrid()
		got := Fmod(vec(xs...), vec(ys...))
		for i := range xs {
			r := got.Lane(i)
			if r != math.Mod(xs[i], ys[i]) {
				t.Fatalf("Fmod(%v, %v) = %v, want %v", xs[i], ys[i], r, math.Mod(xs[i], ys[i]))
			}
			if r != 0 && math.Signbit(r) != math.Signbit(xs[i]) {
				t.Fatalf("Fmod(%v, %v) = %v, sign differs from x", xs[i], ys[i], r)
			}
			if math.Abs(r) >= math.Abs(ys[i]) {
				t.Fatalf("Fmod(%v, %v) = %v, not below |y|", xs[i], ys[i], r)
			}
		}
	})

	t.Run("zero divisor", func(t *testing.T) {
		got := Fmod(vec(1.0, -3, math.Inf(1)), vec(0.0, 0, 2))
		for i := range got.NumLanes() {
			if !math.IsNaN(got.Lane(i)) {
				t.Errorf("Fmod: lane %d: got %v, want NaN", i, got.Lane(i))
			}
		}
	})
}

func TestRemainder(t *testing.T) {
	t.Run("round to nearest quotient", func(t *testing.T) {
		// 5/2 and 7/2 tie; the quotient rounds to 2 and 4.
		x := vec(5.0, 7, 5.5, -5.5, 1)
		y := vec(2.0, 2, 2, 2, 0.3)
		want := []float64{1, -1, -0.5, 0.5, math.Remainder(1, 0.3)}
		if diff := cmp.Diff(want, Remainder(x, y).Data(), cmpopts.EquateApprox(0, 1e-15)); diff != "" {
			t.Errorf("Remainder mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("grid", func(t *testing.T) {
		xs, ys := dyadicGrid()
		got := Remainder(vec(xs...), vec(ys...))
		for i := range xs {
			if want := math.Remainder(xs[i], ys[i]); got.Lane(i) != want {
				t.Fatalf("Remainder(%v, %v) = %v, want %v", xs[i], ys[i], got.Lane(i), want)
			}
			if math.Abs(got.Lane(i)) > math.Abs(ys[i])/2 {
				t.Fatalf("Remainder(%v, %v) = %v, above |y|/2", xs[i], ys[i], got.Lane(i))
			}
		}
	})

	t.Run("zero divisor", func(t *testing.T) {
		if got := Remainder(vec(1.0), vec(0.0)).Lane(0); !math.IsNaN(got) {
			t.Errorf("Remainder(1, 0): got %v, want NaN", got)
		}
	})

	t.Run("float32", func(t *testing.T) {
		got := Remainder(vec[float32](10, -10, 9), vec[float32](3, 3, 6))
		if diff := cmp.Diff([]float32{1, -1, -3}, got.Data()); diff != "" {
			t.Errorf("Remainder mismatch (-want +got):\n%s", diff)
		}
	})
}
