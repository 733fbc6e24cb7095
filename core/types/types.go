package types

import (
	"strings"

	"github.com/aledsdavies/lindenmaker/core/vecmath"
)

// ValueType represents the type of a resolved command argument
type ValueType int

const (
	NumberType ValueType = iota
	StringType
)

// String returns a string representation of the ValueType
func (t ValueType) String() string {
	switch t {
	case NumberType:
		return "number"
	case StringType:
		return "string"
	default:
		return "unknown"
	}
}

// Value is one resolved command argument: a number or a string literal
type Value struct {
	Type ValueType
	Num  float64
	Str  string
}

// Number creates a numeric value
func Number(f float64) Value { return Value{Type: NumberType, Num: f} }

// String creates a string value
func String(s string) Value { return Value{Type: StringType, Str: s} }

// IsNumber reports whether v holds a number
func (v Value) IsNumber() bool { return v.Type == NumberType }

// String renders the value the way it would appear in an L-string
func (v Value) String() string {
	if v.Type == NumberType {
		return vecmath.FormatFloat(v.Num)
	}
	return v.Str
}

// Command is one interpretable command: a symbol and its resolved arguments
type Command struct {
	Symbol    rune
	Args      []Value
	Offset    int    // byte offset in the pruned L-string
	Malformed bool   // the parenthesized group could not be parsed
	Text      string // original text, e.g. "F(2,0.5)"
}

// String renders the command with its arguments
func (c Command) String() string {
	if c.Text != "" {
		return c.Text
	}
	if len(c.Args) == 0 {
		return string(c.Symbol)
	}
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return string(c.Symbol) + "(" + strings.Join(parts, ",") + ")"
}
