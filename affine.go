package arclen

import (
	"fmt"
	"math"
)

// AT is an affine transform, a 3x3 matrix (flattened by rows) used for
// transforming 2D points. The last row is always (0,0,1).
type AT [9]float64

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	return AT{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	m := Identity()
	m[2], m[5] = p.X(), p.Y()
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	sin, cos := math.Sincos(theta)
	return AT{
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	}
}

// Scaling transform. Scales x and y independently.
func Scaling(sx, sy float64) AT {
	return AT{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	}
}

func (m AT) at(row, col int) float64 {
	return m[row*3+col]
}

// Combine 2 affine transformation to a new one: the result applies m first,
// then n.
func (m AT) Combine(n AT) AT {
	var o AT
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o[row*3+col] = n.at(row, 0)*m.at(0, col) +
				n.at(row, 1)*m.at(1, col) +
				n.at(row, 2)*m.at(2, col)
		}
	}
	return o
}

// Transform a 2D-point.
func (m AT) Transform(p Pair) Pair {
	x, y := p.X(), p.Y()
	return P(m[0]*x+m[1]*y+m[2], m[3]*x+m[4]*y+m[5])
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}
