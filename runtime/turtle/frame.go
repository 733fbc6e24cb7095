package turtle

import (
	"github.com/aledsdavies/lindenmaker/core/invariant"
	"github.com/aledsdavies/lindenmaker/core/vecmath"
)

// orthoTolerance bounds how far the axes may drift from orthonormal
const orthoTolerance = 1e-9

// degenerateTolerance is the shortest vector that still has a direction
const degenerateTolerance = 1e-12

// Frame is the turtle's rigid transform: three orthonormal axes and an origin.
// Axes satisfy Heading × Left = Up.
type Frame struct {
	Heading  vecmath.Vec3
	Left     vecmath.Vec3
	Up       vecmath.Vec3
	Position vecmath.Vec3
}

// IdentityFrame returns the initial frame: heading +X, left +Y, up +Z at the origin.
func IdentityFrame() Frame {
	return Frame{
		Heading: vecmath.XAxis,
		Left:    vecmath.YAxis,
		Up:      vecmath.ZAxis,
	}
}

// UpwardFrame returns a frame heading along +Z, so structures grow upward in
// Z-up scenes: heading +Z, left -Y, up +X.
func UpwardFrame() Frame {
	return Frame{
		Heading: vecmath.ZAxis,
		Left:    vecmath.YAxis.Neg(),
		Up:      vecmath.XAxis,
	}
}

// Axis returns the vector selected by a query axis tag: 'H', 'L', 'U' or 'P'.
func (f Frame) Axis(tag byte) (vecmath.Vec3, bool) {
	switch tag {
	case 'H':
		return f.Heading, true
	case 'L':
		return f.Left, true
	case 'U':
		return f.Up, true
	case 'P':
		return f.Position, true
	default:
		return vecmath.Vec3{}, false
	}
}

// Matrix returns the frame as a column-major 4x4 transform with columns
// heading, left, up and position.
func (f Frame) Matrix() [16]float64 {
	return [16]float64{
		f.Heading.X, f.Heading.Y, f.Heading.Z, 0,
		f.Left.X, f.Left.Y, f.Left.Z, 0,
		f.Up.X, f.Up.Y, f.Up.Z, 0,
		f.Position.X, f.Position.Y, f.Position.Z, 1,
	}
}

// orthonormalize re-derives left and up from heading with Gram-Schmidt so
// rounding error does not accumulate across many rotations.
func (f *Frame) orthonormalize() {
	h, ok := f.Heading.Normalize(degenerateTolerance)
	invariant.Invariant(ok, "heading must not collapse")
	l := f.Left.Sub(h.Scale(h.Dot(f.Left)))
	l, ok = l.Normalize(degenerateTolerance)
	invariant.Invariant(ok, "left must not collapse onto heading")
	f.Heading = h
	f.Left = l
	f.Up = h.Cross(l)
}

// checkOrthonormal asserts the frame invariant
func (f Frame) checkOrthonormal() {
	invariant.Near(f.Heading.Length(), 1, orthoTolerance, "|heading|")
	invariant.Near(f.Left.Length(), 1, orthoTolerance, "|left|")
	invariant.Near(f.Up.Length(), 1, orthoTolerance, "|up|")
	invariant.Near(f.Heading.Dot(f.Left), 0, orthoTolerance, "heading·left")
	invariant.Near(f.Heading.Dot(f.Up), 0, orthoTolerance, "heading·up")
	invariant.Near(f.Left.Dot(f.Up), 0, orthoTolerance, "left·up")
	invariant.Near(f.Heading.Cross(f.Left).Dot(f.Up), 1, orthoTolerance, "handedness")
	invariant.Finite(f.Position.X, "position.x")
	invariant.Finite(f.Position.Y, "position.y")
	invariant.Finite(f.Position.Z, "position.z")
}
