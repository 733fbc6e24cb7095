package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/aledsdavies/lindenmaker/core/vecmath"
	"github.com/aledsdavies/lindenmaker/runtime/interpreter"
	"github.com/aledsdavies/lindenmaker/runtime/lexer"
	"github.com/aledsdavies/lindenmaker/runtime/renderer"
)

// DisplayTrace renders a recorded trace as a tree followed by the final
// turtle state and the trace digest
func DisplayTrace(w io.Writer, trace renderer.Trace, res *interpreter.Result, useColor bool) error {
	_, _ = fmt.Fprintf(w, "%s %d events\n", Colorize("trace:", ColorBlue, useColor), trace.Len())
	for i, e := range trace.Events {
		branch := "├─"
		if i == trace.Len()-1 {
			branch = "└─"
		}
		_, _ = fmt.Fprintf(w, "%s %s\n", Colorize(branch, ColorGray, useColor), formatEvent(e, useColor))
	}

	p := res.State.Frame
	_, _ = fmt.Fprintf(w, "%s position %s heading %s width %s material %d\n",
		Colorize("final:", ColorBlue, useColor),
		p.Position.String(), p.Heading.String(), vecmath.FormatFloat(res.State.LineWidth), res.State.MaterialIndex)
	_, _ = fmt.Fprintf(w, "%s %d commands, %d skipped, %d queries\n",
		Colorize("stats:", ColorBlue, useColor), res.Commands, res.Skipped, res.Queries)

	digest, err := trace.DigestString()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", Colorize("digest:", ColorBlue, useColor), digest)
	return nil
}

func formatEvent(e renderer.Event, useColor bool) string {
	var b strings.Builder
	b.WriteString(Colorize(string(e.Kind), ColorCyan, useColor))
	switch e.Kind {
	case renderer.KindInternode:
		fmt.Fprintf(&b, " length=%s width=%s", vecmath.FormatFloat(e.Length), vecmath.FormatFloat(e.Width))
	case renderer.KindNode:
		fmt.Fprintf(&b, " scale=%s", joinFloats(e.Scale[:1]))
	case renderer.KindObject:
		fmt.Fprintf(&b, " %q scale=%s", e.Name, joinFloats(e.Scale))
	}
	fmt.Fprintf(&b, " at %s heading %s", joinFloats(e.Pose.Position[:]), joinFloats(e.Pose.Heading[:]))
	if e.Material != 0 {
		fmt.Fprintf(&b, " material=%d", e.Material)
	}
	return b.String()
}

func joinFloats(fs []float64) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = vecmath.FormatFloat(f)
	}
	return strings.Join(parts, ",")
}

// DisplayTokens prints one token per line with its offset
func DisplayTokens(w io.Writer, tokens []lexer.Token, useColor bool) {
	for _, tok := range tokens {
		line := fmt.Sprintf("%4d  %s", tok.Offset, tok.String())
		if tok.Malformed {
			line += "  " + Colorize("(malformed)", ColorRed, useColor)
		} else if !interpreter.IsCommand(tok.Symbol) {
			line += "  " + Colorize("(skipped)", ColorGray, useColor)
		}
		_, _ = fmt.Fprintln(w, line)
	}
}
