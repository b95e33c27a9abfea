package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/passgen/internal/config"
	passgenerrors "github.com/alexisbeaulieu97/passgen/pkg/errors"
	"github.com/alexisbeaulieu97/passgen/pkg/password"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	logFile    string
	theme      string
	noMouse    bool
}

func (f *rootFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "Path to the configuration file")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&f.logFormat, "log-format", "", "Log format (text, json)")
	pf.StringVar(&f.logFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&f.theme, "theme", "", "UI theme (light, dark)")
	pf.BoolVar(&f.noMouse, "no-mouse", false, "Disable mouse support in the UI")
}

// applyTo overrides configuration values with explicitly set flags.
func (f *rootFlags) applyTo(cfg *config.Config) {
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.logFormat != "" {
		cfg.Log.Format = f.logFormat
	}
	if f.logFile != "" {
		cfg.Log.File = f.logFile
	}
	if f.theme != "" {
		cfg.UI.Theme = f.theme
	}
	if f.noMouse {
		cfg.UI.Mouse = false
	}
}

type generateOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Symbols   bool
	Count     int
}

func (o generateOptions) passwordOptions() password.Options {
	return password.Options{
		Length:           o.Length,
		IncludeUppercase: o.Uppercase,
		IncludeLowercase: o.Lowercase,
		IncludeSymbols:   o.Symbols,
	}
}

func validateGenerateOptions(opts generateOptions, gen config.GeneratorConfig) error {
	if opts.Length < gen.MinLength || opts.Length > gen.MaxLength {
		return passgenerrors.NewValidationError("length",
			fmt.Sprintf("must be between %d and %d, got %d", gen.MinLength, gen.MaxLength, opts.Length), nil)
	}
	if opts.Count <= 0 {
		return passgenerrors.NewValidationError("count", fmt.Sprintf("must be positive, got %d", opts.Count), nil)
	}
	return nil
}
