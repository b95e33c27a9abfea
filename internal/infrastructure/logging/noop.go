package logging

import (
	"context"

	"github.com/alexisbeaulieu97/passgen/internal/ports"
)

// NoOpLogger discards everything. The TUI uses it when no log file is set.
type NoOpLogger struct{}

func (*NoOpLogger) Debug(context.Context, string, ...interface{}) {}
func (*NoOpLogger) Info(context.Context, string, ...interface{})  {}
func (*NoOpLogger) Warn(context.Context, string, ...interface{})  {}
func (*NoOpLogger) Error(context.Context, string, ...interface{}) {}

func (n *NoOpLogger) With(...interface{}) ports.Logger { return n }

// NewNoOpLogger returns a discarding ports.Logger.
func NewNoOpLogger() ports.Logger { return &NoOpLogger{} }
