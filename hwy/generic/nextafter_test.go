package generic

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNextAfter(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		want     float64
	}{
		{"up from one", 1, 2, 1 + 0x1p-52},
		{"down from one", 1, 0, 1 - 0x1p-53},
		{"up from minus one", -1, 0, -1 + 0x1p-53},
		{"down from minus one", -1, -2, -1 - 0x1p-52},
		{"equal", 3, 3, 3},
		{"zero toward positive", 0, 1, math.SmallestNonzeroFloat64},
		{"zero toward negative", 0, -1, -math.SmallestNonzeroFloat64},
		{"negative zero toward positive", negZero, 1, math.SmallestNonzeroFloat64},
		{"negative zero equals zero", negZero, 0, negZero},
		{"smallest subnormal to zero", math.SmallestNonzeroFloat64, -1, 0},
		{"negative smallest subnormal to zero", -math.SmallestNonzeroFloat64, 1, negZero},
		{"subnormal to normal", math.Float64frombits(0x000FFFFFFFFFFFFF), 1, 0x1p-1022},
		{"max to infinity", math.MaxFloat64, math.Inf(1), math.Inf(1)},
		{"negative max to negative infinity", -math.MaxFloat64, math.Inf(-1), math.Inf(-1)},
		{"infinity toward zero is clamped", math.Inf(1), 0, math.Inf(1)},
		{"negative infinity toward zero is clamped", math.Inf(-1), 0, math.Inf(-1)},
		{"infinity to itself", math.Inf(1), math.Inf(1), math.Inf(1)},
	}

	from := make([]float64, len(tests))
	to := make([]float64, len(tests))
	for i, tt := range tests {
		from[i], to[i] = tt.from, tt.to
	}
	got := NextAfter(vec(from...), vec(to...))

	for i, tt := range tests {
		if diff := cmp.Diff(tt.want, got.Lane(i), bitsEqual); diff != "" {
			t.Errorf("%s: NextAfter(%v, %v) mismatch (-want +got):\n%s", tt.name, tt.from, tt.to, diff)
		}
	}
}

func TestNextAfterNaN(t *testing.T) {
	p := math.Float64frombits(0x7FF8000000000123)
	q := math.Float64frombits(0x7FF8000000000456)

	// A NaN from is returned as is; otherwise the NaN to is returned.
	got := NextAfter(vec(p, 1, p, math.Inf(1)), vec(1, q, q, q))
	want := []float64{p, q, p, q}
	if diff := cmp.Diff(want, got.Data(), bitsEqual); diff != "" {
		t.Errorf("NextAfter mismatch (-want +got):\n%s", diff)
	}
}

func TestNextAfterToSelf(t *testing.T) {
	xs := append(append([]float64{}, specials64...), randomBits64(newRand(), 1<<12)...)
	got := NextAfter(vec(xs...), vec(xs...))

	if diff := cmp.Diff(xs, got.Data(), bitsEqual); diff != "" {
		t.Errorf("NextAfter(x, x) mismatch (-want +got):\n%s", diff)
	}
}

func TestNextAfterMatchesMath(t *testing.T) {
	r := newRand()

	t.Run("float64", func(t *testing.T) {
		var from, to []float64
		targets := []float64{0, negZero, 1, -1, math.Inf(1), math.Inf(-1), math.MaxFloat64, -math.SmallestNonzeroFloat64}
		for _, x := range finite64(append(randomBits64(r, 1<<12), specials64...)) {
			for _, y := range targets {
				from, to = append(from, x), append(to, y)
			}
		}

		got := NextAfter(vec(from...), vec(to...))
		for i := range from {
			want := math.Nextafter(from[i], to[i])
			if math.Float64bits(got.Lane(i)) != math.Float64bits(want) {
				t.Fatalf("NextAfter(%v, %v) = %v (0x%016X), want %v (0x%016X)",
					from[i], to[i], got.Lane(i), math.Float64bits(got.Lane(i)), want, math.Float64bits(want))
			}
		}
	})

	t.Run("float32", func(t *testing.T) {
		var from, to []float32
		targets := []float32{0, 1, -1, float32(math.Inf(1)), float32(math.Inf(-1))}
		for _, x := range append(randomBits32(r, 1<<12), specials32...) {
			if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
				continue
			}
			for _, y := range targets {
				from, to = append(from, x), append(to, y)
			}
		}

		got := NextAfter(vec(from...), vec(to...))
		for i := range from {
			want := math.Nextafter32(from[i], to[i])
			if math.Float32bits(got.Lane(i)) != math.Float32bits(want) {
				t.Fatalf("NextAfter(%v, %v) = %v, want %v", from[i], to[i], got.Lane(i), want)
			}
		}
	})
}

func TestNextAfterStepsOneULP(t *testing.T) {
	// Walking up from -3 subnormal steps to +3 subnormal steps visits every
	// representable value in between exactly once, crossing zero.
	x := vec(-3 * math.SmallestNonzeroFloat64)
	up := vec(1.0)
	want := []float64{
		-2 * math.SmallestNonzeroFloat64,
		-math.SmallestNonzeroFloat64,
		negZero,
		math.SmallestNonzeroFloat64,
		2 * math.SmallestNonzeroFloat64,
		3 * math.SmallestNonzeroFloat64,
	}
	for step, w := range want {
		x = NextAfter(x, up)
		if diff := cmp.Diff(w, x.Lane(0), bitsEqual); diff != "" {
			t.Fatalf("step %d mismatch (-want +got):\n%s", step, diff)
		}
	}
}

func TestNextAfterInt(t *testing.T) {
	from := vec[int32](math.MinInt32, -1, 0, math.MaxInt32)
	to := vec[int32](0, 5, -5, 0)
	if diff := cmp.Diff(from.Data(), NextAfterInt(from, to).Data()); diff != "" {
		t.Errorf("NextAfterInt mismatch (-want +got):\n%s", diff)
	}

	u := vec[uint64](0, math.MaxUint64)
	if diff := cmp.Diff(u.Data(), NextAfterInt(u, vec[uint64](1, 0)).Data()); diff != "" {
		t.Errorf("NextAfterInt mismatch (-want +got):\n%s", diff)
	}
}
