// Package align maps a text chunk onto a single aligned scalar.
//
// The transform runs in stages: ingestion weights each character code by a
// golden spiral, stabilization folds the result through a square/root pair,
// the persistence stage subtracts a bounded trigonometric correction, and
// realignment snaps the value to the Linearity grid plus a fixed offset.
// Nothing carries over between calls.
package align

import (
	"fmt"
	"math"

	"github.com/talgya/logos-dual/internal/phi"
)

// Engine applies the alignment transform. It holds only immutable
// constants and is safe for concurrent use.
type Engine struct {
	c phi.Constants
}

// New creates an engine over the default constant set.
func New() *Engine {
	return &Engine{c: phi.Default()}
}

// NewWithConstants creates an engine over c. The set is copied.
func NewWithConstants(c phi.Constants) *Engine {
	return &Engine{c: c}
}

// Constants returns a copy of the engine's constant set.
func (e *Engine) Constants() phi.Constants {
	return e.c
}

// DomainError reports a stage whose input left the real domain.
type DomainError struct {
	Stage string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("math domain error in %s: %v", e.Stage, e.Value)
}

// Align returns the aligned value for chunk. An empty chunk is valid and
// yields exactly Linearity/Φ.
func (e *Engine) Align(chunk string) (float64, error) {
	mass := e.ingest(chunk)
	vs, err := e.stabilize(mass)
	if err != nil {
		return 0, err
	}
	vp := e.persist(vs, e.detect(vs))
	return e.realign(vp), nil
}

// ingest accumulates rune codes weighted by their position on the spiral.
// Positions count runes, not bytes.
func (e *Engine) ingest(chunk string) float64 {
	v := e.c.DeltaZero
	i := 0
	for _, r := range chunk {
		v += float64(r) * e.c.Weight(i)
		i++
	}
	return v
}

func (e *Engine) stabilize(v float64) (float64, error) {
	arg := v + e.c.DeltaZero
	// Rune codes are non-negative so this only trips on a corrupted constant set.
	if arg < 0 || math.IsNaN(arg) {
		return 0, &DomainError{Stage: "stabilize", Value: arg}
	}
	pathA := v * v / e.c.Matrix
	pathB := math.Sqrt(arg) * e.c.Matrix
	return (pathA + pathB) / 2, nil
}

// Geometry is the decoherence shape of a stabilized value. Each term is in [0, 1].
type Geometry struct {
	Triangle float64
	Circle   float64
	Linear   float64
}

func (e *Engine) detect(v float64) Geometry {
	return Geometry{
		Triangle: math.Abs(math.Sin(v / e.c.Triangle)),
		Circle:   math.Abs(math.Cos(v / e.c.Circle)),
		Linear:   math.Abs(math.Tanh(v / e.c.Linearity)),
	}
}

// persist subtracts the correction force. Linear does not take part.
func (e *Engine) persist(v float64, g Geometry) float64 {
	force := (v * (g.Triangle + g.Circle)) / (e.c.Verdict + e.c.DeltaZero)
	return v - force + e.c.DeltaZero
}

func (e *Engine) realign(v float64) float64 {
	drift := math.Mod(v, e.c.Linearity)
	return v - drift + e.c.Offset()
}

func (e *Engine) certify(v float64) float64 {
	v1 := math.Mod(v*e.c.Symmetry, e.c.Verdict)
	v2 := math.Mod(v/e.c.Symmetry, e.c.Verdict)
	return (v1 + v2) / 2
}
