package parser

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/aledsdavies/lindenmaker/core/types"
	"github.com/aledsdavies/lindenmaker/runtime/lexer"
)

func TestResolveArgs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []types.Value
	}{
		{"empty", "", nil},
		{"single number", "2", []types.Value{types.Number(2)}},
		{"floats", "2,0.5", []types.Value{types.Number(2), types.Number(0.5)}},
		{"negative and exponent", "-1.5,1e3", []types.Value{types.Number(-1.5), types.Number(1000)}},
		{"bare string", "H,0,0,0", []types.Value{types.String("H"), types.Number(0), types.Number(0), types.Number(0)}},
		{"double quoted", `"Leaf",2`, []types.Value{types.String("Leaf"), types.Number(2)}},
		{"single quoted", `'Leaf'`, []types.Value{types.String("Leaf")}},
		{"mismatched quotes kept", `"Leaf'`, []types.Value{types.String(`"Leaf'`)}},
		{"empty field", "1,,2", []types.Value{types.Number(1), types.String(""), types.Number(2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ResolveArgs(tt.raw)); diff != "" {
				t.Errorf("ResolveArgs(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestResolveArgsSpecialFloats(t *testing.T) {
	// strconv accepts these spellings, so they resolve as numbers
	vals := ResolveArgs("inf,NaN")
	assert.True(t, vals[0].IsNumber())
	assert.True(t, math.IsInf(vals[0].Num, 1))
	assert.True(t, math.IsNaN(vals[1].Num))
}

func TestParseToken(t *testing.T) {
	toks := lexer.Tokenize("+(30)F")
	cmd := ParseToken(toks[0])

	assert.Equal(t, '+', cmd.Symbol)
	assert.Equal(t, []types.Value{types.Number(30)}, cmd.Args)
	assert.Equal(t, "+(30)", cmd.String())
	assert.Equal(t, 0, cmd.Offset)

	bare := ParseToken(toks[1])
	assert.Empty(t, bare.Args)
	assert.Equal(t, 5, bare.Offset)
}
