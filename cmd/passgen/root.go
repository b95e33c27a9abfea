package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/passgen/internal/tui"
	"github.com/alexisbeaulieu97/passgen/internal/tui/generator"
	"github.com/alexisbeaulieu97/passgen/internal/ui/theme"
)

func newRootCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "passgen",
		Short:         "Generate passwords from an interactive terminal form",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive := app.isTerminal()
			if err := app.Load(cmd.Context(), interactive); err != nil {
				return err
			}
			if !interactive {
				return runOnce(cmd, app)
			}
			return runTUI(cmd, app)
		},
	}

	app.flags.register(cmd)

	cmd.AddCommand(newGenerateCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// runOnce prints a single password using the configured defaults.
func runOnce(cmd *cobra.Command, app *AppContext) error {
	ctx, log := app.CommandContext(cmd, "command.root")
	gen := app.Config.Generator
	opts := generateOptions{
		Length:    gen.DefaultLength,
		Uppercase: gen.Uppercase,
		Lowercase: gen.Lowercase,
		Symbols:   gen.Symbols,
		Count:     1,
	}
	log.Debug(ctx, "stdout is not a terminal, printing one password")
	return printPasswords(ctx, cmd, app, log, opts)
}

func runTUI(cmd *cobra.Command, app *AppContext) error {
	ctx, log := app.CommandContext(cmd, "command.tui")
	cfg := app.Config

	th, err := theme.ByName(cfg.UI.Theme)
	if err != nil {
		return err
	}

	var zones *zone.Manager
	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UI.Mouse {
		zones = zone.New()
		defer zones.Close()
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	model := tui.NewModel(
		generator.Props{
			MinLength:     cfg.Generator.MinLength,
			MaxLength:     cfg.Generator.MaxLength,
			DefaultLength: cfg.Generator.DefaultLength,
			LockLength:    cfg.Generator.LockLength,
		},
		tui.Options{Theme: th, Zones: zones},
		generator.WithContext(ctx),
		generator.WithGenerator(app.Generator),
		generator.WithClipboard(app.Clipboard),
		generator.WithLogger(log),
		generator.WithEvents(app.Events),
		generator.WithToastDuration(cfg.UI.ToastDuration.Std()),
		generator.WithTrackWidth(cfg.UI.TrackWidth),
	)

	log.Info(ctx, "launching ui", "theme", th.Name, "mouse", cfg.UI.Mouse)
	if err := app.runProgram(model, programOpts...); err != nil {
		log.Error(ctx, "ui exited with error", "error", err)
		return fmt.Errorf("run ui: %w", err)
	}
	log.Info(ctx, "ui closed")
	return nil
}
