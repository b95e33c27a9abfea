package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	cblog "github.com/charmbracelet/log"

	"github.com/alexisbeaulieu97/passgen/internal/ports"
)

// Options configures the charmbracelet/log adapter.
type Options struct {
	Writer    io.Writer
	Level     string
	Formatter cblog.Formatter
	Prefix    string
	Layer     string
	Component string
}

// Logger implements ports.Logger on top of charmbracelet/log. Secret fields
// are written as ports.RedactedValue.
type Logger struct {
	base   *cblog.Logger
	fields []interface{}
}

// New builds a Logger. Output defaults to stderr, level to info.
func New(opts Options) (*Logger, error) {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	level := cblog.InfoLevel
	if opts.Level != "" {
		parsed, err := cblog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	base := cblog.NewWithOptions(w, cblog.Options{
		Level:           level,
		Prefix:          opts.Prefix,
		ReportTimestamp: true,
		Formatter:       opts.Formatter,
	})

	layer := opts.Layer
	if layer == "" {
		layer = "infrastructure"
	}
	fields := []interface{}{"layer", layer}
	if opts.Component != "" {
		fields = append(fields, "component", opts.Component)
	}
	return &Logger{base: base, fields: fields}, nil
}

func (l *Logger) Debug(ctx context.Context, msg string, kv ...interface{}) {
	l.log(ctx, cblog.DebugLevel, msg, kv)
}

func (l *Logger) Info(ctx context.Context, msg string, kv ...interface{}) {
	l.log(ctx, cblog.InfoLevel, msg, kv)
}

func (l *Logger) Warn(ctx context.Context, msg string, kv ...interface{}) {
	l.log(ctx, cblog.WarnLevel, msg, kv)
}

func (l *Logger) Error(ctx context.Context, msg string, kv ...interface{}) {
	l.log(ctx, cblog.ErrorLevel, msg, kv)
}

// With returns a child logger. Later keys override earlier ones on output.
func (l *Logger) With(kv ...interface{}) ports.Logger {
	if l == nil {
		return NewNoOpLogger()
	}
	fields := make([]interface{}, 0, len(l.fields)+len(kv))
	fields = append(fields, l.fields...)
	fields = append(fields, kv...)
	return &Logger{base: l.base, fields: fields}
}

func (l *Logger) log(ctx context.Context, level cblog.Level, msg string, kv []interface{}) {
	if l == nil || l.base == nil {
		return
	}
	pairs := merge(l.fields, kv)
	if id := ports.GetCorrelationID(ctx); id != "" {
		pairs = merge(pairs, []interface{}{"correlation_id", id})
	}
	l.base.Log(level, msg, pairs...)
}

// merge folds key/value lists left to right. A repeated key keeps its first
// position and its last value; non-string keys are dropped.
func merge(lists ...[]interface{}) []interface{} {
	index := make(map[string]int)
	var out []interface{}
	for _, list := range lists {
		for i := 0; i+1 < len(list); i += 2 {
			key, ok := list[i].(string)
			if !ok || key == "" {
				continue
			}
			value := scrub(key, list[i+1])
			if at, seen := index[key]; seen {
				out[at+1] = value
				continue
			}
			index[key] = len(out)
			out = append(out, key, value)
		}
	}
	return out
}

func scrub(key string, value interface{}) interface{} {
	if ports.IsSecretKey(key) {
		return ports.RedactedValue
	}
	return value
}

var _ ports.Logger = (*Logger)(nil)
