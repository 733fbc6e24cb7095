// Package query rewrites state-query placeholders in a production buffer
// with live turtle vectors, feeding interpretation results back into the
// next derivation step.
package query

import (
	"regexp"

	"github.com/aledsdavies/lindenmaker/core/errors"
	"github.com/aledsdavies/lindenmaker/core/invariant"
	"github.com/aledsdavies/lindenmaker/core/vecmath"
)

// placeholderPattern matches one query command with its argument list
var placeholderPattern = regexp.MustCompile(`\?\([^()]*\)`)

// Rewriter owns a copy of the production buffer while queries are answered
type Rewriter struct {
	buffer string
}

// NewRewriter creates a rewriter over buffer
func NewRewriter(buffer string) *Rewriter {
	return &Rewriter{buffer: buffer}
}

// Rewrite replaces the nth (0-based) placeholder with ?(axis,x,y,z). Every
// other placeholder is left untouched.
func (r *Rewriter) Rewrite(n int, axis string, v vecmath.Vec3) error {
	matches := placeholderPattern.FindAllStringIndex(r.buffer, n+1)
	if n < 0 || n >= len(matches) {
		return errors.NewMissingPlaceholderError(n, r.Count())
	}
	loc := matches[n]
	answer := Format(axis, v)
	// later queries count placeholders, so an answer must still be one
	invariant.Postcondition(placeholderPattern.FindString(answer) == answer, "answered query %q must remain a placeholder", answer)
	r.buffer = r.buffer[:loc[0]] + answer + r.buffer[loc[1]:]
	return nil
}

// String returns the current buffer
func (r *Rewriter) String() string { return r.buffer }

// Count returns the number of placeholders in the buffer
func (r *Rewriter) Count() int {
	return len(placeholderPattern.FindAllStringIndex(r.buffer, -1))
}

// Format renders an answered query, e.g. "?(H,1,0,0)"
func Format(axis string, v vecmath.Vec3) string {
	return "?(" + axis + "," + v.String() + ")"
}
