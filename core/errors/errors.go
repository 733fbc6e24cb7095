package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind identifies the category of an interpretation failure
type Kind string

const (
	// Argument errors
	InvalidArgumentCount  Kind = "INVALID_ARGUMENT_COUNT"
	InvalidArgumentType   Kind = "INVALID_ARGUMENT_TYPE"
	MalformedArgumentList Kind = "MALFORMED_ARGUMENT_LIST"

	// Turtle state errors
	StackUnderflow   Kind = "STACK_UNDERFLOW"
	DegenerateLookAt Kind = "DEGENERATE_LOOK_AT"
	PositionOverflow Kind = "POSITION_OVERFLOW"

	// Query errors
	InvalidQueryAxis        Kind = "INVALID_QUERY_AXIS"
	MissingQueryPlaceholder Kind = "MISSING_QUERY_PLACEHOLDER"

	// Renderer errors
	UnknownCustomObject Kind = "UNKNOWN_CUSTOM_OBJECT"
	RendererFailure     Kind = "RENDERER_FAILURE"

	// Run control
	Cancelled Kind = "CANCELLED"

	// Configuration
	InvalidConfig Kind = "INVALID_CONFIG"
)

// ErrObjectNotFound is wrapped by renderers that cannot resolve a custom
// object name.
var ErrObjectNotFound = stderrors.New("named object not found")

// InterpretationError is the single terminal failure of an interpretation run
type InterpretationError struct {
	Kind    Kind
	Symbol  rune // command symbol, 0 when not tied to a command
	Offset  int  // byte offset of the command in the pruned L-string, -1 if unknown
	Message string
	Usage   string // accepted forms of the command, for argument errors
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *InterpretationError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.Usage != "" {
		msg += "\nUsage: " + e.Usage
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (caused by: %v)", e.Cause)
	}
	return msg
}

// Unwrap allows errors.Is/As through to the cause
func (e *InterpretationError) Unwrap() error {
	return e.Cause
}

// New creates an InterpretationError with no symbol attached
func New(kind Kind, message string) *InterpretationError {
	return &InterpretationError{
		Kind:    kind,
		Offset:  -1,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// Wrap creates an InterpretationError around an existing error
func Wrap(kind Kind, message string, cause error) *InterpretationError {
	e := New(kind, message)
	e.Cause = cause
	return e
}

// WithContext adds context information to the error
func (e *InterpretationError) WithContext(key string, value interface{}) *InterpretationError {
	e.Context[key] = value
	return e
}

// At attaches the command symbol and its offset
func (e *InterpretationError) At(symbol rune, offset int) *InterpretationError {
	e.Symbol = symbol
	e.Offset = offset
	return e
}

// Attach sets the symbol and offset on err when it is an InterpretationError
// and returns err unchanged otherwise
func Attach(err error, symbol rune, offset int) error {
	var ie *InterpretationError
	if stderrors.As(err, &ie) {
		ie.At(symbol, offset)
	}
	return err
}

// GetContext returns context value by key
func (e *InterpretationError) GetContext(key string) (interface{}, bool) {
	value, exists := e.Context[key]
	return value, exists
}

// Helper functions for common error scenarios

// NewArgumentCountError reports an arity not accepted by symbol
func NewArgumentCountError(symbol rune, description, usage string, got int) *InterpretationError {
	e := New(InvalidArgumentCount, fmt.Sprintf("Invalid number of arguments for command '%c' (%s): got %d", symbol, description, got)).
		WithContext("arguments", got)
	e.Symbol = symbol
	e.Usage = usage
	return e
}

// NewArgumentTypeError reports an argument of the wrong kind at position index
func NewArgumentTypeError(symbol rune, index int, want string, got string) *InterpretationError {
	e := New(InvalidArgumentType, fmt.Sprintf("Argument %d of command '%c' must be a %s, got %q", index+1, symbol, want, got)).
		WithContext("index", index)
	e.Symbol = symbol
	return e
}

// NewMalformedArgumentsError reports an unparseable parenthesized group
func NewMalformedArgumentsError(text string) *InterpretationError {
	return New(MalformedArgumentList, fmt.Sprintf("Malformed argument list in %q", text)).
		WithContext("text", text)
}

// NewStackUnderflowError reports a ']' with no matching '['
func NewStackUnderflowError() *InterpretationError {
	e := New(StackUnderflow, "Cannot restore turtle state: no matching '[' (stack is empty)")
	e.Symbol = ']'
	return e
}

// NewDegenerateLookAtError reports a look-at target equal to the turtle position
func NewDegenerateLookAtError(x, y, z float64) *InterpretationError {
	e := New(DegenerateLookAt, fmt.Sprintf("Cannot look at (%g, %g, %g): target equals the turtle position", x, y, z))
	e.Symbol = '@'
	return e
}

// NewPositionOverflowError reports a move that would leave the float64 range
func NewPositionOverflowError(distance float64) *InterpretationError {
	return New(PositionOverflow, fmt.Sprintf("Cannot move %g: the turtle position would overflow", distance)).
		WithContext("distance", distance)
}

// NewInvalidQueryAxisError reports a query axis outside H, L, U, P
func NewInvalidQueryAxisError(axis string) *InterpretationError {
	e := New(InvalidQueryAxis, fmt.Sprintf("Unknown query axis %q, expected one of H, L, U, P", axis)).
		WithContext("axis", axis)
	e.Symbol = '?'
	return e
}

// NewMissingPlaceholderError reports a production buffer with too few placeholders
func NewMissingPlaceholderError(n, found int) *InterpretationError {
	e := New(MissingQueryPlaceholder, fmt.Sprintf("Query %d has no placeholder in the production buffer (found %d)", n, found)).
		WithContext("query", n).
		WithContext("placeholders", found)
	e.Symbol = '?'
	return e
}

// NewRendererError classifies a failure returned by the renderer
func NewRendererError(symbol rune, name string, cause error) *InterpretationError {
	var e *InterpretationError
	if stderrors.Is(cause, ErrObjectNotFound) {
		e = Wrap(UnknownCustomObject, fmt.Sprintf("Error using '%c' draw custom object command: no object named %q", symbol, name), cause).
			WithContext("object", name)
	} else {
		e = Wrap(RendererFailure, fmt.Sprintf("Renderer failed on command '%c'", symbol), cause)
	}
	e.Symbol = symbol
	return e
}

// IsKind checks if err is an InterpretationError of the given kind
func IsKind(err error, kind Kind) bool {
	var ie *InterpretationError
	if stderrors.As(err, &ie) {
		return ie.Kind == kind
	}
	return false
}

// KindOf returns the kind of err, or "" when err is not an InterpretationError
func KindOf(err error) Kind {
	var ie *InterpretationError
	if stderrors.As(err, &ie) {
		return ie.Kind
	}
	return ""
}
