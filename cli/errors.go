package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/aledsdavies/lindenmaker/core/errors"
)

// CLIError represents a formatted CLI error with context
type CLIError struct {
	Message string
	Details string // Additional context
	Hint    string // How to fix it
}

// Error implements the error interface
func (e *CLIError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Details != "" {
		b.WriteString("\n")
		b.WriteString(e.Details)
	}
	if e.Hint != "" {
		b.WriteString("\n")
		b.WriteString(e.Hint)
	}
	return b.String()
}

// FormatError formats an error for CLI output with colors
func FormatError(w io.Writer, err error, useColor bool) {
	if err == nil {
		return
	}

	var ie *errors.InterpretationError
	var ce *CLIError
	switch {
	case stderrors.As(err, &ie):
		formatInterpretationError(w, ie, useColor)
	case stderrors.As(err, &ce):
		formatCLIError(w, ce, useColor)
	default:
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), err.Error())
	}
}

// formatInterpretationError prints the kind, the failing command and its usage
func formatInterpretationError(w io.Writer, err *errors.InterpretationError, useColor bool) {
	_, _ = fmt.Fprintf(w, "%s%s %s\n", Colorize("Error: ", ColorRed, useColor), Colorize(string(err.Kind), ColorRed, useColor), err.Message)

	if err.Symbol != 0 && err.Offset >= 0 {
		_, _ = fmt.Fprintf(w, "%s\n", Colorize(fmt.Sprintf("  at '%c' (offset %d)", err.Symbol, err.Offset), ColorGray, useColor))
	}
	if err.Cause != nil {
		_, _ = fmt.Fprintf(w, "%s\n", Colorize("  cause: "+err.Cause.Error(), ColorGray, useColor))
	}
	if err.Usage != "" {
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Usage: ", ColorYellow, useColor), err.Usage)
	}
}

// formatCLIError formats CLI errors
func formatCLIError(w io.Writer, err *CLIError, useColor bool) {
	_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), err.Message)

	if err.Details != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", err.Details)
	}

	if err.Hint != "" {
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Hint: ", ColorYellow, useColor), err.Hint)
	}
}
