package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/passgen/internal/ports"
)

// Options configures the JSON logger selected with --log-format json.
type Options struct {
	Level     string
	Writer    io.Writer
	Layer     string
	Component string
}

// Logger writes one zerolog JSON object per entry.
type Logger struct {
	zl zerolog.Logger
}

// New returns a Logger writing to opts.Writer, or stderr.
func New(opts Options) (*Logger, error) {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	level := zerolog.InfoLevel
	if opts.Level != "" {
		var err error
		if level, err = zerolog.ParseLevel(strings.ToLower(opts.Level)); err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
	}
	layer := opts.Layer
	if layer == "" {
		layer = "infrastructure"
	}

	ctx := zerolog.New(w).Level(level).With().Timestamp().Str("layer", layer)
	if opts.Component != "" {
		ctx = ctx.Str("component", opts.Component)
	}
	return &Logger{zl: ctx.Logger()}, nil
}

// With implements ports.Logger.
func (l *Logger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return nil
	}
	ctx := l.zl.With()
	eachField(fields, func(key string, value interface{}) {
		ctx = ctx.Interface(key, value)
	})
	return &Logger{zl: ctx.Logger()}
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.emit(ctx, zerolog.DebugLevel, msg, fields)
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.emit(ctx, zerolog.InfoLevel, msg, fields)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.emit(ctx, zerolog.WarnLevel, msg, fields)
}

// Error writes an error entry. error values are marshalled as their message.
func (l *Logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.emit(ctx, zerolog.ErrorLevel, msg, fields)
}

func (l *Logger) emit(ctx context.Context, level zerolog.Level, msg string, fields []interface{}) {
	if l == nil {
		return
	}
	ev := l.zl.WithLevel(level)
	if ev == nil {
		return
	}
	if id := ports.GetCorrelationID(ctx); id != "" {
		ev = ev.Str("correlation_id", id)
	}
	eachField(fields, func(key string, value interface{}) {
		if err, ok := value.(error); ok {
			ev = ev.AnErr(key, err)
			return
		}
		ev = ev.Interface(key, value)
	})
	ev.Msg(msg)
}

// eachField walks key/value pairs, skipping malformed keys and replacing
// secret values.
func eachField(fields []interface{}, fn func(string, interface{})) {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok || key == "" {
			continue
		}
		if ports.IsSecretKey(key) {
			fn(key, ports.RedactedValue)
			continue
		}
		fn(key, fields[i+1])
	}
}

var _ ports.Logger = (*Logger)(nil)
