// Package interpreter runs L-strings through the turtle: it prunes cuts,
// tokenizes, resolves arguments and dispatches each command to the turtle
// state machine and the injected Renderer.
package interpreter

import (
	"context"
	"log/slog"
	"time"

	"github.com/aledsdavies/lindenmaker/core/errors"
	"github.com/aledsdavies/lindenmaker/core/invariant"
	"github.com/aledsdavies/lindenmaker/runtime/lexer"
	"github.com/aledsdavies/lindenmaker/runtime/parser"
	"github.com/aledsdavies/lindenmaker/runtime/query"
	"github.com/aledsdavies/lindenmaker/runtime/turtle"
)

// Result summarizes a completed interpretation
type Result struct {
	Production  string       // production buffer after query rewriting
	State       turtle.State // final turtle state
	Commands    int          // commands dispatched
	Skipped     int          // tokens with unrecognized symbols
	Queries     int          // '?' commands seen
	Telemetry   map[rune]int // dispatched commands per symbol, nil unless enabled
	DebugEvents []DebugEvent // nil unless enabled
}

// Interpreter holds configuration only; every Interpret call builds its own
// turtle state, stack and query counter.
type Interpreter struct {
	renderer Renderer
	config   Config
}

// New creates an interpreter drawing through r. r may be nil for dry runs.
func New(r Renderer, opts ...Option) *Interpreter {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	invariant.Precondition(r != nil || config.dryRun, "renderer must not be nil unless dry run is enabled")
	return &Interpreter{renderer: r, config: config}
}

// Interpret interprets lstring. Queries rewrite placeholders in production,
// which is returned in Result.Production; an empty production leaves
// queries unanswered. The first error stops the run; renderer calls made
// before it are not undone.
func (in *Interpreter) Interpret(ctx context.Context, lstring, production string) (*Result, error) {
	invariant.NotNil(ctx, "context")
	d := in.config.defaults
	r := &run{
		config:   &in.config,
		renderer: in.renderer,
		log:      in.config.logger,
		state:    turtle.NewState(in.config.frame, d.Width, d.Material),
	}
	if production != "" {
		r.rewriter = query.NewRewriter(production)
	}
	if in.config.telemetry > TelemetryOff {
		r.counts = make(map[rune]int)
	}

	input := lexer.Prepare(lstring)
	r.log.Debug("interpret start", "length", len(input), "dry_run", in.config.dryRun)

	for tok := range lexer.New(input).Tokens() {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(errors.Cancelled, "interpretation cancelled", err).At(tok.Symbol, tok.Offset)
		}
		if err := r.dispatch(parser.ParseToken(tok)); err != nil {
			r.log.Debug("interpret failed", "command", tok.String(), "offset", tok.Offset, "error", err)
			return nil, err
		}
	}

	result := &Result{
		Production:  production,
		State:       r.state,
		Commands:    r.commands,
		Skipped:     r.skipped,
		Queries:     r.queries,
		Telemetry:   r.counts,
		DebugEvents: r.events,
	}
	if r.rewriter != nil {
		result.Production = r.rewriter.String()
	}
	r.log.Debug("interpret done", "commands", r.commands, "skipped", r.skipped, "queries", r.queries, "depth", r.stack.Len())
	return result, nil
}

// Interpret runs lstring once with a fresh interpreter and no production buffer
func Interpret(ctx context.Context, lstring string, r Renderer, opts ...Option) (*Result, error) {
	return New(r, opts...).Interpret(ctx, lstring, "")
}

// Query performs a dry run of lstring and returns production with every
// query answered, ready for the next derivation step.
func Query(ctx context.Context, lstring, production string, opts ...Option) (string, error) {
	opts = append(opts, WithDryRun())
	res, err := New(nil, opts...).Interpret(ctx, lstring, production)
	if err != nil {
		return "", err
	}
	return res.Production, nil
}

// run is the state of one interpretation
type run struct {
	config   *Config
	renderer Renderer
	log      *slog.Logger

	state    turtle.State
	stack    turtle.Stack
	rewriter *query.Rewriter

	commands int
	skipped  int
	queries  int
	counts   map[rune]int
	events   []DebugEvent
}

func (r *run) recordDebugEvent(event string, offset int, context string) {
	if r.config.debug == DebugOff {
		return
	}
	r.events = append(r.events, DebugEvent{
		Timestamp: time.Now(),
		Event:     event,
		Offset:    offset,
		Context:   context,
	})
}
