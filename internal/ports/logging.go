package ports

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// Logger is passgen's structured logging contract. Calls take alternating
// key/value pairs. Implementations add the correlation ID found in ctx and
// usually carry these fields:
//   - correlation_id, one per command invocation
//   - layer: cli, tui or infrastructure
//   - component: generator, clipboard, config, ...
//
// Values under keys for which IsSecretKey reports true must not be written.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

// RedactedValue replaces secret values in log output.
const RedactedValue = "[redacted]"

var secretMarkers = []string{"password", "secret", "token"}

// IsSecretKey reports whether a log field key names secret material.
func IsSecretKey(key string) bool {
	key = strings.ToLower(key)
	for _, m := range secretMarkers {
		if strings.Contains(key, m) {
			return true
		}
	}
	return false
}

type correlationIDKey struct{}

// WithCorrelationID returns a copy of ctx carrying id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// GetCorrelationID returns the ID stored in ctx, or "".
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// GenerateCorrelationID returns 16 random hex characters. If the system
// random source fails, the current time in nanoseconds is used instead.
func GenerateCorrelationID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 16)
	}
	return hex.EncodeToString(b[:])
}
