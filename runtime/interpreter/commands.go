package interpreter

import (
	"slices"

	"github.com/aledsdavies/lindenmaker/core/errors"
	"github.com/aledsdavies/lindenmaker/core/types"
)

// commandForm describes the accepted forms of one command symbol
type commandForm struct {
	arities     []int
	description string
	usage       string
}

// commandTable lists every symbol the interpreter understands. Symbols not
// in the table are skipped.
var commandTable = map[rune]commandForm{
	'F':  {[]int{0, 1, 2}, "move turtle and draw", "'F' or 'F(step_size)' or 'F(step_size, width)'"},
	'f':  {[]int{0, 1}, "move turtle", "'f' or 'f(step_size)'"},
	'[':  {[]int{0}, "push current turtle state to stack", "'[' (no arguments)"},
	']':  {[]int{0}, "restore turtle state from stack", "']' (no arguments)"},
	'+':  {[]int{0, 1}, "turn left", "'+' or '+(angle_degree)'"},
	'-':  {[]int{0, 1}, "turn right", "'-' or '-(angle_degree)'"},
	'&':  {[]int{0, 1}, "pitch down", "'&' or '&(angle_degree)'"},
	'^':  {[]int{0, 1}, "pitch up", "'^' or '^(angle_degree)'"},
	'\\': {[]int{0, 1}, "roll right", `'\' or '\(angle_degree)'`},
	'/':  {[]int{0, 1}, "roll left", "'/' or '/(angle_degree)'"},
	'|':  {[]int{0}, "turn halfway around", "'|' (no arguments)"},
	'_':  {[]int{0, 1}, "increase or set linewidth", "'_' or '_(width)'"},
	'!':  {[]int{0, 1}, "decrease or set linewidth", "'!' or '!(width)'"},
	';':  {[]int{0, 1}, "increase or set material index", "';' or ';(materialindex)'"},
	',':  {[]int{0, 1}, "decrease or set material index", "',' or ',(materialindex)'"},
	'~':  {[]int{1, 2, 4}, "draw custom object", `'~("Object")' or '~("Object", scale)' or '~("Object", scale_x, scale_y, scale_z)'`},
	'@':  {[]int{3}, "turtle look at", "'@(x, y, z)'; the heading will point toward x, y, z keeping the frame's handedness"},
	'?':  {[]int{4}, "query turtle state", `'?(H|L|U|P,0,0,0)' for heading, left, up or position; the zeros are replaced by the vector's x, y, z`},
}

// IsCommand reports whether symbol is interpreted (rather than skipped)
func IsCommand(symbol rune) bool {
	_, ok := commandTable[symbol]
	return ok
}

// Usage returns the accepted forms of symbol, or "" for unknown symbols
func Usage(symbol rune) string {
	return commandTable[symbol].usage
}

// checkArity validates the argument count of a known command
func checkArity(cmd types.Command, form commandForm) error {
	if slices.Contains(form.arities, len(cmd.Args)) {
		return nil
	}
	return errors.NewArgumentCountError(cmd.Symbol, form.description, form.usage, len(cmd.Args)).
		At(cmd.Symbol, cmd.Offset)
}
