package generic

import (
	"math"
	"math/rand/v2"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/hwy-fallback/hwy"
)

func vec[T hwy.Lanes](xs ...T) hwy.Vec[T] {
	return hwy.LoadN(xs, len(xs))
}

// bitsEqual compares floats by bit pattern, so -0 differs from +0 and NaN
// payloads matter.
var bitsEqual = cmp.Options{
	cmp.Comparer(func(a, b float64) bool { return math.Float64bits(a) == math.Float64bits(b) }),
	cmp.Comparer(func(a, b float32) bool { return math.Float32bits(a) == math.Float32bits(b) }),
}

var negZero = math.Copysign(0, -1)

// specials64 covers each class boundary of float64.
var specials64 = []float64{
	0, negZero,
	math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
	math.Float64frombits(0x000FFFFFFFFFFFFF), -math.Float64frombits(0x000FFFFFFFFFFFFF),
	0x1p-1022, -0x1p-1022,
	0.5, -0.5, 1, -1, 1.5, -1.5, 2.5, -2.5,
	0x1p52 - 0.5, -(0x1p52 - 0.5), 0x1p52, 0x1p53, 1e300,
	math.MaxFloat64, -math.MaxFloat64,
	math.Inf(1), math.Inf(-1), math.NaN(),
}

// specials32 is the float32 counterpart of specials64.
var specials32 = []float32{
	0, float32(negZero),
	math.SmallestNonzeroFloat32, -math.SmallestNonzeroFloat32,
	math.Float32frombits(0x007FFFFF), -math.Float32frombits(0x007FFFFF),
	0x1p-126, -0x1p-126,
	0.5, -0.5, 1, -1, 1.5, -1.5, 2.5, -2.5,
	0x1p23 - 0.5, -(0x1p23 - 0.5), 0x1p23, 0x1p24, 1e30,
	math.MaxFloat32, -math.MaxFloat32,
	float32(math.Inf(1)), float32(math.Inf(-1)), float32(math.NaN()),
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(0x68777966, 0x616c6c62))
}

// randomBits64 returns n float64 values with uniformly random bit
// patterns, so every exponent (and NaN/Inf) is represented.
func randomBits64(r *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Float64frombits(r.Uint64())
	}
	return out
}

func randomBits32(r *rand.Rand, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(r.Uint32())
	}
	return out
}

func finite64(xs []float64) []float64 {
	out := xs[:0:0]
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			out = append(out, x)
		}
	}
	return out
}
