package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/lindenmaker/runtime/config"
	"github.com/aledsdavies/lindenmaker/runtime/interpreter"
	"github.com/aledsdavies/lindenmaker/runtime/renderer"
)

// Output formats of the interpret command
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatCBOR = "cbor"
)

type interpretOptions struct {
	file     string
	length   float64
	width    float64
	growth   float64
	angle    float64
	material int
	dryRun   bool
	nodes    bool
	objects  []string
	format   string
	watch    bool
}

func newInterpretCmd(global *globalOptions) *cobra.Command {
	var opts interpretOptions

	cmd := &cobra.Command{
		Use:   "interpret [LSTRING]",
		Short: "Interpret an L-string and print the recorded drawing trace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch opts.format {
			case FormatText, FormatYAML, FormatCBOR:
			default:
				return &CLIError{
					Message: fmt.Sprintf("unknown output format %q", opts.format),
					Hint:    "Use one of: text, yaml, cbor",
				}
			}

			run := func() error {
				lstring, err := readLString(args, opts.file)
				if err != nil {
					return err
				}
				return runInterpret(cmd, global, &opts, lstring)
			}

			if !opts.watch {
				return run()
			}
			if opts.file == "" || opts.file == "-" || len(args) > 0 {
				return &CLIError{
					Message: "--watch needs an L-string file",
					Hint:    "Use --watch together with --file PATH",
				}
			}
			useColor := ShouldUseColor(global.noColor)
			return watchFile(cmd.Context(), opts.file, debugLogger(cmd, global), run, func(err error) {
				FormatError(cmd.ErrOrStderr(), err, useColor)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read the L-string from a file (- for stdin)")
	cmd.Flags().Float64Var(&opts.length, "length", 0, "Default step length")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "Initial line width")
	cmd.Flags().Float64Var(&opts.growth, "growth", 0, "Line width growth factor for _ and !")
	cmd.Flags().Float64Var(&opts.angle, "angle", 0, "Default rotation angle in degrees")
	cmd.Flags().IntVar(&opts.material, "material", 0, "Initial material index")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Move the turtle without drawing")
	cmd.Flags().BoolVar(&opts.nodes, "nodes", false, "Draw a node at every branch start")
	cmd.Flags().StringArrayVar(&opts.objects, "object", nil, "Name of a known custom object (repeatable)")
	cmd.Flags().StringVar(&opts.format, "format", FormatText, "Output format: text, yaml or cbor")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Interpret again whenever the file changes")

	return cmd
}

// runInterpret interprets lstring once and writes the trace to the
// command's output
func runInterpret(cmd *cobra.Command, global *globalOptions, opts *interpretOptions, lstring string) error {
	cfg, err := loadConfig(global)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg, opts)

	interpOpts, err := cfg.Options()
	if err != nil {
		return err
	}
	interpOpts = append(interpOpts, interpreter.WithLogger(debugLogger(cmd, global)))
	if opts.dryRun {
		interpOpts = append(interpOpts, interpreter.WithDryRun())
	}

	rec := renderer.NewRecorder(cfg.RecorderOptions()...)
	res, err := interpreter.New(rec, interpOpts...).Interpret(cmd.Context(), lstring, "")
	if err != nil {
		return err
	}
	return writeTrace(cmd.OutOrStdout(), opts.format, rec.Trace(), res, ShouldUseColor(global.noColor))
}

func writeTrace(w io.Writer, format string, trace renderer.Trace, res *interpreter.Result, useColor bool) error {
	switch format {
	case FormatYAML:
		data, err := trace.YAML()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case FormatCBOR:
		data, err := trace.MarshalCBOR()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return DisplayTrace(w, trace, res, useColor)
	}
}

// loadConfig reads --config, or returns the defaults when it is not set
func loadConfig(global *globalOptions) (*config.Config, error) {
	if global.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(global.configPath)
}

// applyFlagOverrides copies explicitly set flags over the configuration
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config, opts *interpretOptions) {
	flags := cmd.Flags()
	if flags.Changed("length") {
		cfg.Defaults.Length = opts.length
	}
	if flags.Changed("width") {
		cfg.Defaults.Width = opts.width
	}
	if flags.Changed("growth") {
		cfg.Defaults.Growth = opts.growth
	}
	if flags.Changed("angle") {
		cfg.Defaults.Angle = opts.angle
	}
	if flags.Changed("material") {
		cfg.Defaults.Material = opts.material
	}
	if opts.nodes {
		cfg.DrawNodes = true
	}
	if len(opts.objects) > 0 {
		cfg.Objects = append(cfg.Objects, opts.objects...)
	}
}

func debugLogger(cmd *cobra.Command, global *globalOptions) *slog.Logger {
	return interpreter.NewDebugLogger(cmd.ErrOrStderr(), global.debug)
}
