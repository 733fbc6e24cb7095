package interpreter

import (
	"github.com/aledsdavies/lindenmaker/core/vecmath"
	"github.com/aledsdavies/lindenmaker/runtime/turtle"
)

// Handle is an opaque reference to drawn geometry. The interpreter only
// sequences renderer calls and never inspects it.
type Handle = any

// Renderer turns drawing commands into geometry. Each call receives the
// turtle state to place the geometry with. A renderer that cannot resolve a
// custom object name returns an error wrapping errors.ErrObjectNotFound.
type Renderer interface {
	DrawInternode(pose turtle.State, length, width float64) (Handle, error)
	DrawNode(pose turtle.State, scale float64) (Handle, error)
	DrawCustomObject(pose turtle.State, name string, scale vecmath.Vec3) (Handle, error)
}
