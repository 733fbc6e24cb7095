// Package invariant provides contract assertions for the turtle interpreter.
//
// Assertions guard the pose algebra and the interpreter loop: a violated
// contract means a bug in this module, never bad user input. User input
// errors are reported through core/errors instead.
//
// All functions panic on violation.
package invariant

import (
	"fmt"
	"math"
	"reflect"
	"runtime"
)

// Precondition checks an input contract at function entry.
// Panics with PRECONDITION VIOLATION if condition is false.
//
// Example:
//
//	func (s *Stack) Push(st State) {
//	    invariant.Precondition(st.LineWidth > 0, "line width must be positive")
//	    // ... work ...
//	}
func Precondition(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("PRECONDITION", format, args...)
	}
}

// Postcondition checks an output contract before function return.
// Panics with POSTCONDITION VIOLATION if condition is false.
func Postcondition(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("POSTCONDITION", format, args...)
	}
}

// Invariant checks an internal invariant during function execution.
// Panics with INVARIANT VIOLATION if condition is false.
//
// Example:
//
//	prev := l.pos
//	for l.pos < len(l.input) {
//	    // ... lex one token ...
//	    invariant.Invariant(l.pos > prev, "lexer must advance")
//	    prev = l.pos
//	}
func Invariant(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("INVARIANT", format, args...)
	}
}

// NotNil panics if value is nil, including typed nils such as (*T)(nil).
func NotNil(value interface{}, name string) {
	if value == nil || isNilValue(value) {
		fail("PRECONDITION", "%s must not be nil", name)
	}
}

func isNilValue(value interface{}) bool {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

// Finite panics if value is NaN or infinite.
func Finite(value float64, name string) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		fail("INVARIANT", "%s must be finite, got %v", name, value)
	}
}

// Near panics if |got-want| exceeds tol.
//
// Example:
//
//	invariant.Near(h.Dot(l), 0, 1e-9, "heading·left")
func Near(got, want, tol float64, name string) {
	if math.IsNaN(got) || math.Abs(got-want) > tol {
		fail("INVARIANT", "%s must be within %g of %g, got %v", name, tol, want, got)
	}
}

// NonNegative panics if value < 0.
func NonNegative(value int, name string) {
	if value < 0 {
		fail("POSTCONDITION", "%s must not be negative, got %d", name, value)
	}
}

// fail panics with a formatted message including the violating call site.
func fail(kind, format string, args ...interface{}) {
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	msg := fmt.Sprintf("%s VIOLATION: "+format, append([]interface{}{kind}, args...)...)

	if frame, ok := frames.Next(); ok {
		msg += fmt.Sprintf("\n  at %s:%d", frame.File, frame.Line)
	}

	panic(msg)
}
