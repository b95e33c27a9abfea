package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/passgen/internal/ports"
)

func entries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		out = append(out, e)
	}
	return out
}

func TestInfoCarriesLayerComponentAndFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, Component: "generator"})
	require.NoError(t, err)

	log.With("length", 12).Info(context.Background(), "password generated", "weak", false)

	got := entries(t, buf)
	require.Len(t, got, 1)
	require.Equal(t, "password generated", got[0]["message"])
	require.Equal(t, float64(12), got[0]["length"])
	require.Equal(t, false, got[0]["weak"])
	require.Equal(t, "generator", got[0]["component"])
	require.Equal(t, "infrastructure", got[0]["layer"])
	require.Equal(t, "info", got[0]["level"])
}

func TestDebugSuppressedAtInfo(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug(context.Background(), "this should not appear")
	require.Empty(t, strings.TrimSpace(buf.String()))
}

func TestErrorIncludesCorrelationAndErrorText(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf, Layer: "cli"})
	require.NoError(t, err)

	ctx := ports.WithCorrelationID(context.Background(), "corr-1")
	log.With("component", "clipboard").Error(ctx, "copy failed", "error", errors.New("boom"))

	got := entries(t, buf)
	require.Len(t, got, 1)
	require.Equal(t, "copy failed", got[0]["message"])
	require.Equal(t, "clipboard", got[0]["component"])
	require.Equal(t, "cli", got[0]["layer"])
	require.Equal(t, "boom", got[0]["error"])
	require.Equal(t, "corr-1", got[0]["correlation_id"])
}

func TestSecretFieldsAreRedacted(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.With("password", "hunter2").Warn(context.Background(), "oops", "secret_value", "s3")

	require.NotContains(t, buf.String(), "hunter2")
	require.NotContains(t, buf.String(), "s3")
	got := entries(t, buf)
	require.Equal(t, ports.RedactedValue, got[0]["password"])
	require.Equal(t, ports.RedactedValue, got[0]["secret_value"])
}

func TestUnknownLevelRejected(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info(context.Background(), "ignored")
		log.Warn(context.Background(), "ignored")
	})
}
