package arclen

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// Vector is the set of operations a control point type has to support.
// Splines combine control points linearly and measure the magnitude of
// derivative vectors; nothing else is required.
//
// The zero value of a Vector type has to behave as the additive identity.
type Vector[T any] interface {
	Add(T) T
	Sub(T) T
	Scaled(float64) T
	Mag() float64
}

// === Pair Data Type ========================================================

// Pair is a 2D point or vector.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(float64(0), float64(0))

var _ Vector[Pair] = Origin

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// Add returns p + q.
func (p Pair) Add(q Pair) Pair {
	return p + q
}

// Sub returns p - q.
func (p Pair) Sub(q Pair) Pair {
	return p - q
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Mag is the length of p, interpreted as a vector.
func (p Pair) Mag() float64 {
	return cmplx.Abs(p.C())
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs, tolerating differences below Epsilon.
func (p Pair) Equal(q Pair) bool {
	return Is0(p.X()-q.X()) && Is0(p.Y()-q.Y())
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return Translation(v).Transform(p).Zap()
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float64) Pair {
	return Rotation(theta).Transform(p).Zap()
}

// === Way points of arbitrary dimension =====================================

// VecN is a point in n-dimensional space. Operations on vectors of different
// dimension treat missing coordinates as 0, which makes the nil VecN a valid
// zero vector for every dimension.
type VecN []float64

var _ Vector[VecN] = VecN(nil)

// V creates a way point from its coordinates.
func V(coords ...float64) VecN {
	v := make(VecN, len(coords))
	copy(v, coords)
	return v
}

// Dim is the number of coordinates of v.
func (v VecN) Dim() int {
	return len(v)
}

// At returns coordinate i, or 0 for i beyond the dimension of v.
func (v VecN) At(i int) float64 {
	if i < 0 || i >= len(v) {
		return 0
	}
	return v[i]
}

// Add returns v + w as a new vector.
func (v VecN) Add(w VecN) VecN {
	r := make(VecN, max(len(v), len(w)))
	for i := range r {
		r[i] = v.At(i) + w.At(i)
	}
	return r
}

// Sub returns v - w as a new vector.
func (v VecN) Sub(w VecN) VecN {
	r := make(VecN, max(len(v), len(w)))
	for i := range r {
		r[i] = v.At(i) - w.At(i)
	}
	return r
}

// Scaled returns v * a as a new vector.
func (v VecN) Scaled(a float64) VecN {
	r := make(VecN, len(v))
	for i, x := range v {
		r[i] = x * a
	}
	return r
}

// Mag is the Euclidean norm of v.
func (v VecN) Mag() float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Equal compares two way points coordinate-wise, tolerating differences below Epsilon.
func (v VecN) Equal(w VecN) bool {
	for i := range max(len(v), len(w)) {
		if !Is0(v.At(i) - w.At(i)) {
			return false
		}
	}
	return true
}

func (v VecN) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, x := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%g", x)
	}
	b.WriteByte(')')
	return b.String()
}
