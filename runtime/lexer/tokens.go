package lexer

import "github.com/aledsdavies/lindenmaker/core/types"

// EOF is the Symbol of the token returned once the input is exhausted
const EOF rune = -1

// Token is one command of an L-string: a symbol with an optional raw
// argument list. Text is a slice of the lexer input, e.g. "F(2,0.5)".
type Token struct {
	Symbol    rune
	Args      string // raw text between the parentheses
	HasArgs   bool   // a parenthesized group followed the symbol
	Malformed bool   // unterminated, nested or stray parentheses
	Offset    int    // 0-based byte offset in the input
	Text      string
}

// String returns the token text as it appeared in the input
func (t Token) String() string {
	if t.Symbol == EOF {
		return "EOF"
	}
	return t.Text
}

// IsEOF reports whether t marks the end of input
func (t Token) IsEOF() bool { return t.Symbol == EOF }

// Command converts the token into a command with the given resolved arguments
func (t Token) Command(args []types.Value) types.Command {
	return types.Command{
		Symbol:    t.Symbol,
		Args:      args,
		Offset:    t.Offset,
		Malformed: t.Malformed,
		Text:      t.Text,
	}
}
