// Package renderer provides a Renderer that records drawing calls as a
// trace instead of building geometry. Traces have a canonical CBOR form and
// a BLAKE2b digest, so two interpretations can be compared byte for byte.
package renderer

import (
	"fmt"
	"slices"
	"sync"

	"github.com/aledsdavies/lindenmaker/core/errors"
	"github.com/aledsdavies/lindenmaker/core/suggest"
	"github.com/aledsdavies/lindenmaker/core/vecmath"
	"github.com/aledsdavies/lindenmaker/runtime/turtle"
)

// EventKind names the renderer call an event records
type EventKind string

const (
	KindInternode EventKind = "internode"
	KindNode      EventKind = "node"
	KindObject    EventKind = "object"
)

// Pose is a snapshot of the turtle frame at the time of a call
type Pose struct {
	Position [3]float64 `cbor:"1,keyasint" yaml:"position,flow"`
	Heading  [3]float64 `cbor:"2,keyasint" yaml:"heading,flow"`
	Left     [3]float64 `cbor:"3,keyasint" yaml:"left,flow"`
	Up       [3]float64 `cbor:"4,keyasint" yaml:"up,flow"`
}

// Event is one recorded renderer call
type Event struct {
	Kind      EventKind `cbor:"1,keyasint" yaml:"kind"`
	Pose      Pose      `cbor:"2,keyasint" yaml:"pose"`
	LineWidth float64   `cbor:"3,keyasint" yaml:"line_width"`
	Material  int       `cbor:"4,keyasint" yaml:"material"`
	Length    float64   `cbor:"5,keyasint,omitempty" yaml:"length,omitempty"`
	Width     float64   `cbor:"6,keyasint,omitempty" yaml:"width,omitempty"`
	Scale     []float64 `cbor:"7,keyasint,omitempty" yaml:"scale,flow,omitempty"`
	Name      string    `cbor:"8,keyasint,omitempty" yaml:"name,omitempty"`
}

// Option configures a Recorder
type Option func(*Recorder)

// WithObjects restricts custom objects to names. Without it every name is
// accepted.
func WithObjects(names ...string) Option {
	return func(r *Recorder) {
		r.objects = append(r.objects, names...)
	}
}

// Recorder implements interpreter.Renderer by appending one Event per call.
// The handle returned for each call is the event's index in the trace.
// Safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	objects []string
	events  []Event
}

// NewRecorder creates an empty recorder
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DrawInternode records a drawn segment
func (r *Recorder) DrawInternode(pose turtle.State, length, width float64) (any, error) {
	e := newEvent(KindInternode, pose)
	e.Length = length
	e.Width = width
	return r.record(e), nil
}

// DrawNode records a branch node
func (r *Recorder) DrawNode(pose turtle.State, scale float64) (any, error) {
	e := newEvent(KindNode, pose)
	e.Scale = []float64{scale, scale, scale}
	return r.record(e), nil
}

// DrawCustomObject records a named object. Names outside the catalog fail
// with an error wrapping errors.ErrObjectNotFound.
func (r *Recorder) DrawCustomObject(pose turtle.State, name string, scale vecmath.Vec3) (any, error) {
	if r.objects != nil && !slices.Contains(r.objects, name) {
		if suggestion := suggest.ClosestMatch(name, r.objects); suggestion != "" {
			return nil, fmt.Errorf("%w: %q (did you mean %q?)", errors.ErrObjectNotFound, name, suggestion)
		}
		return nil, fmt.Errorf("%w: %q", errors.ErrObjectNotFound, name)
	}
	e := newEvent(KindObject, pose)
	e.Name = name
	c := scale.Components()
	e.Scale = c[:]
	return r.record(e), nil
}

// Trace returns a copy of the events recorded so far
func (r *Recorder) Trace() Trace {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Trace{Events: slices.Clone(r.events)}
}

// Reset discards all recorded events
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

func (r *Recorder) record(e Event) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return len(r.events) - 1
}

func newEvent(kind EventKind, pose turtle.State) Event {
	m := pose.Frame.Matrix()
	return Event{
		Kind: kind,
		Pose: Pose{
			Position: [3]float64(m[12:15]),
			Heading:  [3]float64(m[0:3]),
			Left:     [3]float64(m[4:7]),
			Up:       [3]float64(m[8:11]),
		},
		LineWidth: pose.LineWidth,
		Material:  pose.MaterialIndex,
	}
}
