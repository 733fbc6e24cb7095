// Package vecmath holds the small amount of float64 3D algebra the turtle
// needs: vectors, cross products and in-plane rotations of axis pairs.
package vecmath

import (
	"math"
	"strconv"
)

// Vec3 is a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// Common axes
var (
	Zero  = Vec3{}
	XAxis = Vec3{1, 0, 0}
	YAxis = Vec3{0, 1, 0}
	ZAxis = Vec3{0, 0, 1}
)

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns v × o (right-handed)
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length is computed with Hypot so large finite components do not overflow
// the intermediate squares.
func (v Vec3) Length() float64 { return math.Hypot(math.Hypot(v.X, v.Y), v.Z) }

// IsFinite reports whether no component is NaN or infinite
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// Normalize returns v scaled to unit length. ok is false when v is shorter
// than eps or not finite, in which case v is returned unchanged.
func (v Vec3) Normalize(eps float64) (Vec3, bool) {
	if !v.IsFinite() {
		return v, false
	}
	w, l := v, v.Length()
	if math.IsInf(l, 1) {
		// components near MaxFloat64 can still overflow the length
		w = v.Scale(0.25)
		l = w.Length()
	}
	if l < eps {
		return v, false
	}
	return w.Scale(1 / l), true
}

// Near reports whether every component of v is within tol of o
func (v Vec3) Near(o Vec3, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol && math.Abs(v.Z-o.Z) <= tol
}

// Components returns the vector as an array
func (v Vec3) Components() [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

// String formats v as "x,y,z" with the shortest exact float representation
func (v Vec3) String() string {
	return FormatFloat(v.X) + "," + FormatFloat(v.Y) + "," + FormatFloat(v.Z)
}

// FormatFloat formats f with the shortest representation that round-trips.
// Negative zero prints as "0".
func FormatFloat(f float64) string {
	if f == 0 {
		f = 0
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// RotatePair rotates the orthonormal pair (a, b) by angle radians within
// their plane: a turns toward b. This is post-multiplication of a frame by an
// elementary rotation about the axis a × b.
func RotatePair(a, b Vec3, angle float64) (Vec3, Vec3) {
	sin, cos := math.Sincos(angle)
	na := a.Scale(cos).Add(b.Scale(sin))
	nb := b.Scale(cos).Sub(a.Scale(sin))
	return na, nb
}

// Radians converts degrees to radians. The angle is reduced to one turn
// first so huge finite inputs stay finite.
func Radians(deg float64) float64 { return math.Mod(deg, 360) * (math.Pi / 180) }
