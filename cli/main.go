package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
)

// globalOptions are the flags shared by every subcommand
type globalOptions struct {
	configPath string
	debug      bool
	noColor    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var global globalOptions
	rootCmd := newRootCmd(&global)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		FormatError(os.Stderr, err, ShouldUseColor(global.noColor))
		stop()
		os.Exit(1)
	}
}

func newRootCmd(global *globalOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lindenmaker",
		Short:         "Interpret L-strings with a 3D turtle",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVar(&global.configPath, "config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().BoolVar(&global.debug, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&global.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newInterpretCmd(global),
		newQueryCmd(global),
		newTokensCmd(global),
		newCutsCmd(global),
	)
	return rootCmd
}

// readLString returns the L-string from the first argument or, when there
// is none, from file (see getInputReader)
func readLString(args []string, file string) (string, error) {
	if len(args) > 0 {
		if file != "" {
			return "", &CLIError{
				Message: "both an L-string argument and --file were given",
				Hint:    "Pass the L-string either as an argument or with --file, not both",
			}
		}
		return args[0], nil
	}

	reader, closeFunc, err := getInputReader(file)
	if err != nil {
		return "", err
	}
	defer func() { _ = closeFunc() }()

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// getInputReader handles the 3 modes of input:
// 1. Explicit stdin with -f -
// 2. Piped input (auto-detected when no file is given)
// 3. File input
func getInputReader(file string) (io.Reader, func() error, error) {
	// Mode 1: Explicit stdin
	if file == "-" {
		return os.Stdin, func() error { return nil }, nil
	}

	// Mode 2: Check for piped input when no file is given
	if file == "" {
		if hasPipedInput() {
			return os.Stdin, func() error { return nil }, nil
		}
		return nil, nil, &CLIError{
			Message: "no L-string given",
			Hint:    "Pass it as an argument, with --file, or on stdin",
		}
	}

	// Mode 3: File input
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening file %s: %w", file, err)
	}

	closeFunc := func() error {
		return f.Close()
	}

	return f, closeFunc, nil
}

// hasPipedInput detects if there's data piped to stdin
func hasPipedInput() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}

	// Check if stdin is not a character device (i.e., it's piped)
	// Note: We don't check Size() > 0 because pipes may not report size correctly
	return (stat.Mode() & os.ModeCharDevice) == 0
}
