package lexer

import (
	"iter"
	"time"
	"unicode/utf8"

	"github.com/aledsdavies/lindenmaker/core/invariant"
)

// LexerOpt represents a lexer configuration option
type LexerOpt func(*LexerConfig)

// TelemetryMode controls telemetry collection (production-safe)
type TelemetryMode int

const (
	TelemetryOff   TelemetryMode = iota // Zero overhead (default)
	TelemetryBasic                      // Token counts per symbol
)

// DebugLevel controls debug tracing (development only)
type DebugLevel int

const (
	DebugOff   DebugLevel = iota // No debug info (default)
	DebugPaths                   // One event per emitted token
)

// LexerConfig holds lexer configuration
type LexerConfig struct {
	telemetry TelemetryMode
	debug     DebugLevel
}

// WithTelemetryBasic enables per-symbol token counts
func WithTelemetryBasic() LexerOpt {
	return func(c *LexerConfig) {
		c.telemetry = TelemetryBasic
	}
}

// WithDebugPaths enables debug event tracing
func WithDebugPaths() LexerOpt {
	return func(c *LexerConfig) {
		c.debug = DebugPaths
	}
}

// DebugEvent holds debug tracing information (development only)
type DebugEvent struct {
	Timestamp time.Time
	Event     string // "emit_token", "malformed_group", "found_EOF"
	Offset    int
	Context   string
}

// Lexer splits a pruned, whitespace-free L-string into tokens.
// It never fails: anything it cannot make sense of becomes a token of its own.
type Lexer struct {
	input    string
	position int

	telemetryMode TelemetryMode
	counts        map[rune]int

	debugLevel  DebugLevel
	debugEvents []DebugEvent
}

// New creates a new lexer with optional configuration
func New(input string, opts ...LexerOpt) *Lexer {
	config := &LexerConfig{}
	for _, opt := range opts {
		opt(config)
	}

	l := &Lexer{
		telemetryMode: config.telemetry,
		debugLevel:    config.debug,
	}
	if config.telemetry > TelemetryOff {
		l.counts = make(map[rune]int)
	}
	l.Init(input)
	return l
}

// Init resets the lexer with new input (following Go scanner pattern)
func (l *Lexer) Init(input string) {
	l.input = input
	l.position = 0

	for k := range l.counts {
		delete(l.counts, k)
	}
	if l.debugEvents != nil {
		l.debugEvents = l.debugEvents[:0]
	}
}

// NextToken returns the next token, or a token with Symbol EOF at the end
func (l *Lexer) NextToken() Token {
	tok, next := scan(l.input, l.position)
	invariant.Invariant(tok.IsEOF() || next > l.position, "lexer must advance at offset %d", l.position)
	l.position = next

	if l.telemetryMode > TelemetryOff && !tok.IsEOF() {
		l.counts[tok.Symbol]++
	}
	if l.debugLevel > DebugOff {
		l.recordDebugEvent(tok)
	}
	return tok
}

// GetTokens returns all remaining tokens, without the EOF marker
func (l *Lexer) GetTokens() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.IsEOF() {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// Tokens returns a lazy sequence over the whole input. Each range over the
// sequence starts from the beginning and does not move the NextToken cursor.
func (l *Lexer) Tokens() iter.Seq[Token] {
	input := l.input
	return func(yield func(Token) bool) {
		pos := 0
		for {
			tok, next := scan(input, pos)
			if tok.IsEOF() || !yield(tok) {
				return
			}
			pos = next
		}
	}
}

// GetTokenCounts returns per-symbol token counts, nil when telemetry is off
func (l *Lexer) GetTokenCounts() map[rune]int {
	if l.telemetryMode == TelemetryOff {
		return nil
	}
	result := make(map[rune]int, len(l.counts))
	for k, v := range l.counts {
		result[k] = v
	}
	return result
}

// GetDebugEvents returns debug events (development only)
func (l *Lexer) GetDebugEvents() []DebugEvent {
	if l.debugLevel == DebugOff || l.debugEvents == nil {
		return nil
	}
	result := make([]DebugEvent, len(l.debugEvents))
	copy(result, l.debugEvents)
	return result
}

func (l *Lexer) recordDebugEvent(tok Token) {
	event := "emit_token"
	switch {
	case tok.IsEOF():
		event = "found_EOF"
	case tok.Malformed:
		event = "malformed_group"
	}
	l.debugEvents = append(l.debugEvents, DebugEvent{
		Timestamp: time.Now(),
		Event:     event,
		Offset:    tok.Offset,
		Context:   tok.String(),
	})
}

// Tokenize returns every token of input
func Tokenize(input string) []Token {
	return New(input).GetTokens()
}

// scan lexes the token starting at pos and returns it with the offset of
// the following token.
func scan(input string, pos int) (Token, int) {
	if pos >= len(input) {
		return Token{Symbol: EOF, Offset: len(input)}, len(input)
	}

	r, size := utf8.DecodeRuneInString(input[pos:])
	tok := Token{Symbol: r, Offset: pos}

	switch r {
	case ')':
		// closing paren with no group open
		tok.Malformed = true
		tok.Text = input[pos : pos+size]
		return tok, pos + size
	case '(':
		// group with no command in front of it
		end, _ := scanGroup(input, pos)
		tok.Malformed = true
		tok.HasArgs = true
		tok.Text = input[pos:end]
		tok.Args = groupBody(input, pos, end)
		return tok, end
	}

	next := pos + size
	if next < len(input) && input[next] == '(' {
		end, ok := scanGroup(input, next)
		tok.HasArgs = true
		tok.Malformed = !ok
		tok.Args = groupBody(input, next, end)
		next = end
	}
	tok.Text = input[pos:next]
	return tok, next
}

// scanGroup scans the parenthesized group opening at open. It returns the
// offset just past the group and whether the group was well formed: closed,
// and free of nested parentheses.
func scanGroup(input string, open int) (int, bool) {
	depth := 0
	nested := false
	for i := open; i < len(input); i++ {
		switch input[i] {
		case '(':
			depth++
			if depth > 1 {
				nested = true
			}
		case ')':
			depth--
			if depth == 0 {
				return i + 1, !nested
			}
		}
	}
	return len(input), false
}

// groupBody returns the text between the parentheses of the group
// input[open:end], tolerating a missing closing paren.
func groupBody(input string, open, end int) string {
	body := input[open+1 : end]
	if end > open+1 && input[end-1] == ')' {
		body = input[open+1 : end-1]
	}
	return body
}
