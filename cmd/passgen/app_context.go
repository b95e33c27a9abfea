package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	cblog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/passgen/internal/config"
	infraclipboard "github.com/alexisbeaulieu97/passgen/internal/infrastructure/clipboard"
	infraconfig "github.com/alexisbeaulieu97/passgen/internal/infrastructure/config"
	"github.com/alexisbeaulieu97/passgen/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/passgen/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/passgen/internal/logger"
	"github.com/alexisbeaulieu97/passgen/internal/ports"
	"github.com/alexisbeaulieu97/passgen/pkg/password"
)

// AppContext bundles long-lived services created at startup. Configuration
// and logging are resolved lazily by Load so commands like version never
// touch the config file.
type AppContext struct {
	flags rootFlags

	Config    *config.Config
	Logger    ports.Logger
	Events    ports.EventPublisher
	Clipboard ports.Clipboard
	Generator *password.Generator

	isTerminal func() bool
	lookupEnv  config.LookupFunc
	dotEnvPath string
	runProgram func(tea.Model, ...tea.ProgramOption) error
	stderr     io.Writer
	closers    []io.Closer
	tally      *events.Tally
}

func newAppContext() *AppContext {
	return &AppContext{
		Clipboard:  infraclipboard.New(),
		Generator:  password.Default(),
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdout.Fd())) },
		lookupEnv:  os.LookupEnv,
		dotEnvPath: ".env",
		runProgram: func(m tea.Model, opts ...tea.ProgramOption) error {
			_, err := tea.NewProgram(m, opts...).Run()
			return err
		},
		stderr: os.Stderr,
	}
}

// Load resolves configuration and builds the logger and event publisher.
// Entries logged while the config is being read are buffered and replayed
// into the final logger. interactive routes logs away from the terminal.
func (a *AppContext) Load(ctx context.Context, interactive bool) error {
	if a.Config != nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	bootstrap := logging.NewBootstrap(0)

	if a.dotEnvPath != "" {
		if err := config.LoadDotEnv(a.dotEnvPath); err != nil {
			return fmt.Errorf("load %s: %w", a.dotEnvPath, err)
		}
	}

	path, explicit, err := config.ResolvePath(a.flags.configPath, a.lookupEnv)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	cfg, err := infraconfig.NewYAMLLoader(bootstrap, a.lookupEnv).Load(ctx, path, explicit)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	a.flags.applyTo(cfg)
	if err := config.ValidateConfig(cfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	log, err := a.buildLogger(cfg.Log, interactive)
	if err != nil {
		return err
	}
	bootstrap.Replay(log)

	a.Config = cfg
	a.Logger = log
	pub := events.NewLoggingPublisher(log)
	tally, err := events.Attach(pub)
	if err != nil {
		return fmt.Errorf("attach session tally: %w", err)
	}
	a.Events = pub
	a.tally = tally
	return nil
}

func (a *AppContext) buildLogger(cfg config.LogConfig, interactive bool) (ports.Logger, error) {
	var writer io.Writer = a.stderr
	switch {
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		a.closers = append(a.closers, f)
		writer = f
	case interactive:
		return logging.NewNoOpLogger(), nil
	}

	if strings.EqualFold(cfg.Format, "json") {
		log, err := logger.New(logger.Options{Level: cfg.Level, Writer: writer, Layer: "cli"})
		if err != nil {
			return nil, fmt.Errorf("create logger: %w", err)
		}
		return log, nil
	}

	log, err := logging.New(logging.Options{
		Writer:    writer,
		Level:     cfg.Level,
		Formatter: cblog.TextFormatter,
		Prefix:    "passgen",
		Layer:     "cli",
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log, nil
}

// CommandContext derives a correlated context and component logger for a
// command invocation. Load must have succeeded.
func (a *AppContext) CommandContext(cmd *cobra.Command, component string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())

	log := a.Logger
	if log == nil {
		log = logging.NewNoOpLogger()
	}
	return ctx, log.With("component", component)
}

// Close logs the session counters and releases files opened for logging.
func (a *AppContext) Close() {
	if a.tally != nil {
		a.tally.Detach()
		if a.Logger != nil {
			a.Logger.Info(context.Background(), "session finished", a.tally.Fields()...)
		}
		a.tally = nil
	}
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}
