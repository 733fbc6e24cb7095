// Package turtle implements the turtle's pose and drawing attributes and the
// stack used to save and restore them around branches.
package turtle

import (
	"math"

	"github.com/aledsdavies/lindenmaker/core/errors"
	"github.com/aledsdavies/lindenmaker/core/invariant"
	"github.com/aledsdavies/lindenmaker/core/vecmath"
)

// MinLineWidth is the smallest line width the turtle keeps
const MinLineWidth = 0.0001

// State is the full interpretable turtle state. It is a plain value: copying
// a State copies everything.
type State struct {
	Frame         Frame
	LineWidth     float64
	MaterialIndex int
}

// NewState creates a turtle at frame with the given drawing attributes.
// Width and material are clamped like any later update.
func NewState(frame Frame, lineWidth float64, materialIndex int) State {
	frame.checkOrthonormal()
	s := State{Frame: frame}
	s.SetLineWidth(lineWidth)
	s.SetMaterialIndex(materialIndex)
	return s
}

// Move advances the turtle along its heading. A step that would leave the
// float64 range fails and leaves the position unchanged.
func (s *State) Move(distance float64) error {
	next := s.Frame.Position.Add(s.Frame.Heading.Scale(distance))
	if !next.IsFinite() {
		return errors.NewPositionOverflowError(distance)
	}
	s.Frame.Position = next
	return nil
}

// Turn rotates about the up axis; positive angles turn the heading toward left
func (s *State) Turn(degrees float64) {
	s.Frame.Heading, s.Frame.Left = vecmath.RotatePair(s.Frame.Heading, s.Frame.Left, vecmath.Radians(degrees))
	s.settle()
}

// Pitch rotates about the left axis; positive angles pitch the heading up
func (s *State) Pitch(degrees float64) {
	s.Frame.Heading, s.Frame.Up = vecmath.RotatePair(s.Frame.Heading, s.Frame.Up, vecmath.Radians(degrees))
	s.settle()
}

// Roll rotates about the heading axis; positive angles roll left, tilting up
// toward left
func (s *State) Roll(degrees float64) {
	s.Frame.Up, s.Frame.Left = vecmath.RotatePair(s.Frame.Up, s.Frame.Left, vecmath.Radians(degrees))
	s.settle()
}

// LookAt turns the heading toward target keeping the position and the
// handedness of the frame. The new left axis is perpendicular to the old up
// axis and the new heading; when those are parallel the old left axis seeds
// the new up axis instead.
func (s *State) LookAt(target vecmath.Vec3) error {
	f := &s.Frame
	d := target.Sub(f.Position)
	if !d.IsFinite() {
		// both ends are finite, so a quarter of each cannot overflow
		d = target.Scale(0.25).Sub(f.Position.Scale(0.25))
	}
	h, ok := d.Normalize(degenerateTolerance)
	if !ok {
		return errors.NewDegenerateLookAtError(target.X, target.Y, target.Z)
	}

	var l, u vecmath.Vec3
	if l, ok = f.Up.Cross(h).Normalize(orthoTolerance); ok {
		u, _ = h.Cross(l).Normalize(degenerateTolerance)
	} else {
		u, _ = h.Cross(f.Left).Normalize(degenerateTolerance)
		l, _ = u.Cross(h).Normalize(degenerateTolerance)
	}

	f.Heading, f.Left, f.Up = h, l, u
	s.settle()
	return nil
}

// SetLineWidth sets the width, clamped to [MinLineWidth, MaxFloat64]
func (s *State) SetLineWidth(w float64) {
	switch {
	case math.IsNaN(w) || w < MinLineWidth:
		w = MinLineWidth
	case w > math.MaxFloat64:
		w = math.MaxFloat64
	}
	s.LineWidth = w
}

// ScaleLineWidth multiplies the width by factor, clamped to MinLineWidth
func (s *State) ScaleLineWidth(factor float64) {
	s.SetLineWidth(s.LineWidth * factor)
}

// SetMaterialIndex sets the material index, clamped to zero
func (s *State) SetMaterialIndex(i int) {
	s.MaterialIndex = max(i, 0)
	invariant.NonNegative(s.MaterialIndex, "material index")
}

// settle re-orthonormalizes the frame after a rotation and checks it
func (s *State) settle() {
	s.Frame.orthonormalize()
	s.Frame.checkOrthonormal()
}
