// Package parser resolves the raw argument lists produced by the lexer into
// typed command arguments.
package parser

import (
	"strconv"
	"strings"

	"github.com/aledsdavies/lindenmaker/core/types"
	"github.com/aledsdavies/lindenmaker/runtime/lexer"
)

// ResolveArgs parses a comma-separated argument list. Each field that parses
// as a float becomes a number; anything else is kept as a string with one
// pair of surrounding quotes removed. An empty list yields no values.
func ResolveArgs(raw string) []types.Value {
	if raw == "" {
		return nil
	}
	fields := strings.Split(raw, ",")
	values := make([]types.Value, len(fields))
	for i, field := range fields {
		values[i] = resolveField(field)
	}
	return values
}

func resolveField(field string) types.Value {
	if f, err := strconv.ParseFloat(field, 64); err == nil {
		return types.Number(f)
	}
	return types.String(unquote(field))
}

func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'') && first == last {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// ParseToken resolves the arguments of tok into a command
func ParseToken(tok lexer.Token) types.Command {
	return tok.Command(ResolveArgs(tok.Args))
}
