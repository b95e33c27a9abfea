package logging

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/passgen/internal/ports"
)

// DefaultBootstrapLimit caps how many entries a Bootstrap logger retains.
const DefaultBootstrapLimit = 256

type entry struct {
	ctx   context.Context
	level string
	msg   string
	kv    []interface{}
}

type journal struct {
	mu      sync.Mutex
	limit   int
	entries []entry
	dropped int
}

// Bootstrap records entries written before the configured logger exists, for
// example while the config file is being resolved, and replays them later.
// When full, the oldest entry is discarded.
type Bootstrap struct {
	j      *journal
	fields []interface{}
}

// NewBootstrap returns a Bootstrap holding at most limit entries. A non
// positive limit selects DefaultBootstrapLimit.
func NewBootstrap(limit int) *Bootstrap {
	if limit <= 0 {
		limit = DefaultBootstrapLimit
	}
	return &Bootstrap{j: &journal{limit: limit}}
}

func (b *Bootstrap) Debug(ctx context.Context, msg string, kv ...interface{}) {
	b.record(ctx, "debug", msg, kv)
}

func (b *Bootstrap) Info(ctx context.Context, msg string, kv ...interface{}) {
	b.record(ctx, "info", msg, kv)
}

func (b *Bootstrap) Warn(ctx context.Context, msg string, kv ...interface{}) {
	b.record(ctx, "warn", msg, kv)
}

func (b *Bootstrap) Error(ctx context.Context, msg string, kv ...interface{}) {
	b.record(ctx, "error", msg, kv)
}

// With returns a child that shares the same journal.
func (b *Bootstrap) With(kv ...interface{}) ports.Logger {
	fields := append(append([]interface{}{}, b.fields...), kv...)
	return &Bootstrap{j: b.j, fields: fields}
}

// Len reports how many entries are waiting to be replayed.
func (b *Bootstrap) Len() int {
	b.j.mu.Lock()
	defer b.j.mu.Unlock()
	return len(b.j.entries)
}

// Replay writes the recorded entries to dst in order and empties the journal.
// If entries were discarded for space, a warning saying how many is written
// first.
func (b *Bootstrap) Replay(dst ports.Logger) {
	if dst == nil {
		return
	}
	b.j.mu.Lock()
	entries := b.j.entries
	dropped := b.j.dropped
	b.j.entries = nil
	b.j.dropped = 0
	b.j.mu.Unlock()

	if dropped > 0 {
		dst.Warn(context.Background(), "startup log entries dropped", "count", dropped)
	}
	for _, e := range entries {
		switch e.level {
		case "debug":
			dst.Debug(e.ctx, e.msg, e.kv...)
		case "warn":
			dst.Warn(e.ctx, e.msg, e.kv...)
		case "error":
			dst.Error(e.ctx, e.msg, e.kv...)
		default:
			dst.Info(e.ctx, e.msg, e.kv...)
		}
	}
}

func (b *Bootstrap) record(ctx context.Context, level, msg string, kv []interface{}) {
	if b == nil || b.j == nil {
		return
	}
	all := append(append([]interface{}{}, b.fields...), kv...)
	b.j.mu.Lock()
	defer b.j.mu.Unlock()
	if len(b.j.entries) == b.j.limit {
		b.j.entries = b.j.entries[1:]
		b.j.dropped++
	}
	b.j.entries = append(b.j.entries, entry{ctx: ctx, level: level, msg: msg, kv: all})
}

var _ ports.Logger = (*Bootstrap)(nil)
