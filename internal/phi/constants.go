// Package phi provides the immutable constant set used by the aligner.
// Every weight traces back to Φ or to one of the fixed operator values.
package phi

// Phi is the golden ratio.
const Phi = 1.618033988749895

// DeltaZero (Φ⁻¹²) is the zero-point epsilon folded into every stage.
// Stored bit-exact so it matches a correctly rounded pow(Φ, -12).
const DeltaZero = 0x1.970f50cc34672p-9 // 0.0031056200151418573

// Operator values.
const (
	// Linearity is the alignment grid: results snap to multiples of 7.
	Linearity = 7.0

	// Symmetry splits the aligned value for the integrity seal.
	Symmetry = 3.0

	// Triangle is the sine period divisor of the correction stage.
	Triangle = 11.0

	// Circle is the cosine period divisor, and the length of the spiral cycle.
	Circle = 8.0

	// Matrix scales both stabilization paths.
	Matrix = 10.0

	// Verdict bounds the correction force and the seal.
	Verdict = 333.0
)

// SpiralLen is the number of distinct spiral weights. Character positions
// cycle through them modulo SpiralLen.
const SpiralLen = int(Circle)

// Spiral holds Φ^k for k in [0, SpiralLen). The literals are correctly
// rounded; math.Pow does not guarantee that for every k.
var Spiral = [SpiralLen]float64{
	0x1.0000000000000p+0, // 1
	0x1.9e3779b97f4a8p+0, // 1.618033988749895
	0x1.4f1bbcdcbfa54p+1, // 2.618033988749895
	0x1.0f1bbcdcbfa54p+2, // 4.23606797749979
	0x1.b6a99b4b1f77fp+2, // 6.854101966249686
	0x1.62e2ac13ef8eap+3, // 11.090169943749476
	0x1.1f1bbcdcbfa55p+4, // 17.944271909999163
	0x1.d08d12e6b76cap+4, // 29.03444185374864
}

// Constants bundles the full set so an engine can carry it by value.
type Constants struct {
	Phi       float64
	DeltaZero float64
	Linearity float64
	Symmetry  float64
	Triangle  float64
	Circle    float64
	Matrix    float64
	Verdict   float64
	Spiral    [SpiralLen]float64
}

// Default returns a fresh copy of the constant set.
func Default() Constants {
	return Constants{
		Phi:       Phi,
		DeltaZero: DeltaZero,
		Linearity: Linearity,
		Symmetry:  Symmetry,
		Triangle:  Triangle,
		Circle:    Circle,
		Matrix:    Matrix,
		Verdict:   Verdict,
		Spiral:    Spiral,
	}
}

// Offset is the realignment shift added after snapping to the Linearity grid.
func (c Constants) Offset() float64 {
	return c.Linearity / c.Phi // ~4.3262
}

// Weight returns the spiral weight for character position i.
func (c Constants) Weight(i int) float64 {
	return c.Spiral[i%SpiralLen]
}
