package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// tokenExpectation represents an expected token for testing
type tokenExpectation struct {
	Symbol    rune
	Text      string
	Args      string
	HasArgs   bool
	Malformed bool
	Offset    int
}

// assertTokens compares actual tokens with expected, providing clear error messages
func assertTokens(t *testing.T, input string, expected []tokenExpectation) {
	t.Helper()

	var actual []tokenExpectation
	for _, tok := range New(input).GetTokens() {
		actual = append(actual, tokenExpectation{
			Symbol:    tok.Symbol,
			Text:      tok.Text,
			Args:      tok.Args,
			HasArgs:   tok.HasArgs,
			Malformed: tok.Malformed,
			Offset:    tok.Offset,
		})
	}

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("%q: token mismatch (-expected +actual):\n%s", input, diff)
	}
}

func TestTokenizeBranchingString(t *testing.T) {
	var texts []string
	for _, tok := range Tokenize("F(2,0.5)F[+F]") {
		texts = append(texts, tok.String())
	}

	expected := []string{"F(2,0.5)", "F", "[", "+", "F", "]"}
	if diff := cmp.Diff(expected, texts); diff != "" {
		t.Errorf("token mismatch (-expected +actual):\n%s", diff)
	}
}

func TestTokenShapes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:  "arguments and offsets",
			input: "F(2)+(30)f",
			expected: []tokenExpectation{
				{'F', "F(2)", "2", true, false, 0},
				{'+', "+(30)", "30", true, false, 4},
				{'f', "f", "", false, false, 9},
			},
		},
		{
			name:  "unknown symbols are kept",
			input: "AB(1)",
			expected: []tokenExpectation{
				{'A', "A", "", false, false, 0},
				{'B', "B(1)", "1", true, false, 1},
			},
		},
		{
			name:  "empty argument list",
			input: "F()",
			expected: []tokenExpectation{
				{'F', "F()", "", true, false, 0},
			},
		},
		{
			name:  "string arguments",
			input: `~("Leaf",2)`,
			expected: []tokenExpectation{
				{'~', `~("Leaf",2)`, `"Leaf",2`, true, false, 0},
			},
		},
		{
			name:  "unterminated group",
			input: "F(1,2",
			expected: []tokenExpectation{
				{'F', "F(1,2", "1,2", true, true, 0},
			},
		},
		{
			name:  "nested parentheses",
			input: "F((1))f",
			expected: []tokenExpectation{
				{'F', "F((1))", "(1)", true, true, 0},
				{'f', "f", "", false, false, 6},
			},
		},
		{
			name:  "stray closing paren",
			input: ")F",
			expected: []tokenExpectation{
				{')', ")", "", false, true, 0},
				{'F', "F", "", false, false, 1},
			},
		},
		{
			name:  "group without command",
			input: "(1)F",
			expected: []tokenExpectation{
				{'(', "(1)", "1", true, true, 0},
				{'F', "F", "", false, false, 3},
			},
		},
		{
			name:  "multibyte symbol",
			input: "é(1)F",
			expected: []tokenExpectation{
				{'é', "é(1)", "1", true, false, 0},
				{'F', "F", "", false, false, 5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.input, tt.expected)
		})
	}
}

func TestTokensSequenceIsRestartable(t *testing.T) {
	l := New("F[+F]-F")

	collect := func() []string {
		var out []string
		for tok := range l.Tokens() {
			out = append(out, tok.String())
		}
		return out
	}

	first := collect()
	second := collect()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second pass differs (-first +second):\n%s", diff)
	}
	if len(first) != 7 {
		t.Errorf("expected 7 tokens, got %d", len(first))
	}

	// ranging does not consume the streaming cursor
	if tok := l.NextToken(); tok.Text != "F" {
		t.Errorf("NextToken after ranging = %q, want F", tok.Text)
	}
}

func TestTokensEarlyBreak(t *testing.T) {
	count := 0
	for range New("FFFFF").Tokens() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("expected to stop after 2 tokens, got %d", count)
	}
}

func TestNextTokenEOF(t *testing.T) {
	l := New("F")
	if tok := l.NextToken(); tok.Symbol != 'F' {
		t.Fatalf("first token = %q", tok)
	}
	for i := 0; i < 2; i++ {
		tok := l.NextToken()
		if !tok.IsEOF() {
			t.Fatalf("expected EOF, got %q", tok)
		}
		if tok.String() != "EOF" {
			t.Errorf("EOF String() = %q", tok.String())
		}
	}

	l.Init("+-")
	if got := len(l.GetTokens()); got != 2 {
		t.Errorf("after Init expected 2 tokens, got %d", got)
	}
}

func TestTelemetryAndDebugEvents(t *testing.T) {
	l := New("F(1)F[+F]F(", WithTelemetryBasic(), WithDebugPaths())
	l.GetTokens()

	expected := map[rune]int{'F': 4, '[': 1, '+': 1, ']': 1}
	if diff := cmp.Diff(expected, l.GetTokenCounts()); diff != "" {
		t.Errorf("count mismatch (-expected +actual):\n%s", diff)
	}

	events := l.GetDebugEvents()
	if len(events) != 8 {
		t.Fatalf("expected 8 debug events (7 tokens + EOF), got %d", len(events))
	}
	if events[6].Event != "malformed_group" {
		t.Errorf("event 6 = %q, want malformed_group", events[6].Event)
	}
	if events[7].Event != "found_EOF" {
		t.Errorf("last event = %q, want found_EOF", events[7].Event)
	}

	if New("F").GetTokenCounts() != nil {
		t.Error("telemetry must be nil when disabled")
	}
}
