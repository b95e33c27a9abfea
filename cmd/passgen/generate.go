package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/passgen/internal/ports"
	"github.com/alexisbeaulieu97/passgen/pkg/password"
)

func newGenerateCmd(app *AppContext) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print passwords without starting the UI",
		Long: `Print one or more passwords to stdout, one per line.

Character classes default to the configured values; numbers are always included.
A weak combination (no letters or symbols, or fewer than 8 characters) is still
generated but reported on stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Load(cmd.Context(), false); err != nil {
				return err
			}
			ctx, log := app.CommandContext(cmd, "command.generate")

			gen := app.Config.Generator
			flags := cmd.Flags()
			if !flags.Changed("length") {
				opts.Length = gen.DefaultLength
			}
			if !flags.Changed("uppercase") {
				opts.Uppercase = gen.Uppercase
			}
			if !flags.Changed("lowercase") {
				opts.Lowercase = gen.Lowercase
			}
			if !flags.Changed("symbols") {
				opts.Symbols = gen.Symbols
			}

			if err := validateGenerateOptions(opts, gen); err != nil {
				log.Error(ctx, "invalid generate options", "error", err)
				return err
			}
			return printPasswords(ctx, cmd, app, log, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Length, "length", "n", 0, "Password length (defaults to generator.default_length)")
	cmd.Flags().BoolVar(&opts.Uppercase, "uppercase", true, "Include uppercase letters")
	cmd.Flags().BoolVar(&opts.Lowercase, "lowercase", true, "Include lowercase letters")
	cmd.Flags().BoolVar(&opts.Symbols, "symbols", false, "Include symbols")
	cmd.Flags().IntVar(&opts.Count, "count", 1, "Number of passwords to print")

	return cmd
}

func printPasswords(ctx context.Context, cmd *cobra.Command, app *AppContext, log ports.Logger, opts generateOptions) error {
	popts := opts.passwordOptions()
	classes := make([]string, 0, 4)
	for _, c := range popts.ActiveClasses() {
		classes = append(classes, string(c))
	}

	if popts.IsWeak() {
		log.Warn(ctx, "weak password requested", "length", popts.Length, "classes", classes)
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: weak password (length %d, classes %v); use it carefully\n", popts.Length, classes)
		publish(ctx, app, ports.EventPasswordWeak, "length", popts.Length)
	}

	gen := app.Generator
	if gen == nil {
		gen = password.Default()
	}

	out := cmd.OutOrStdout()
	for i := 0; i < opts.Count; i++ {
		if _, err := fmt.Fprintln(out, gen.Generate(popts)); err != nil {
			return fmt.Errorf("write password: %w", err)
		}
	}

	publish(ctx, app, ports.EventPasswordGenerated, "length", popts.Length, "count", opts.Count)
	return nil
}

func publish(ctx context.Context, app *AppContext, eventType string, kv ...interface{}) {
	if app.Events == nil {
		return
	}
	_ = app.Events.Publish(ctx, ports.NewEvent(eventType, kv...))
}
