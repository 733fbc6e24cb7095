package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/lindenmaker/runtime/interpreter"
	"github.com/aledsdavies/lindenmaker/runtime/lexer"
)

func newQueryCmd(global *globalOptions) *cobra.Command {
	var (
		file       string
		production string
		legacy     bool
	)

	cmd := &cobra.Command{
		Use:   "query [LSTRING]",
		Short: "Answer the state queries of an L-string in a production buffer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lstring, err := readLString(args, file)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(global)
			if err != nil {
				return err
			}
			opts, err := cfg.Options()
			if err != nil {
				return err
			}
			opts = append(opts, interpreter.WithLogger(debugLogger(cmd, global)))
			if legacy {
				opts = append(opts, interpreter.WithLegacyQueryAxis())
			}

			if production == "" {
				production = lstring
			}
			out, err := interpreter.Query(cmd.Context(), lstring, production, opts...)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the L-string from a file (- for stdin)")
	cmd.Flags().StringVar(&production, "production", "", "Production buffer to rewrite (defaults to the L-string)")
	cmd.Flags().BoolVar(&legacy, "legacy-axis", false, "Answer unknown query axes with the heading")
	return cmd
}

func newTokensCmd(global *globalOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "tokens [LSTRING]",
		Short: "Print the tokens of an L-string after cuts are applied",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lstring, err := readLString(args, file)
			if err != nil {
				return err
			}
			tokens := lexer.Tokenize(lexer.Prepare(lstring))
			DisplayTokens(cmd.OutOrStdout(), tokens, ShouldUseColor(global.noColor))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the L-string from a file (- for stdin)")
	return cmd
}

func newCutsCmd(global *globalOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "cuts [LSTRING]",
		Short: "Print an L-string with whitespace removed and cut branches pruned",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lstring, err := readLString(args, file)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), lexer.Prepare(lstring))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the L-string from a file (- for stdin)")
	return cmd
}
