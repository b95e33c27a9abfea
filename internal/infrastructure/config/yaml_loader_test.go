package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	cfgpkg "github.com/alexisbeaulieu97/passgen/internal/config"
	"github.com/alexisbeaulieu97/passgen/internal/infrastructure/logging"
	apperrors "github.com/alexisbeaulieu97/passgen/pkg/errors"
)

func noEnv(string) (string, bool) { return "", false }

func newTestLoader(lookup cfgpkg.LookupFunc) *YAMLLoader {
	if lookup == nil {
		lookup = noEnv
	}
	return NewYAMLLoader(logging.NewNoOpLogger(), lookup)
}

func writeConfig(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestYAMLLoaderLoadSuccess(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "config.yaml", "generator:\n  max_length: 40\n  default_length: 16\n")
	cfg, err := newTestLoader(nil).Load(context.Background(), path, true)
	require.NoError(t, err)
	require.Equal(t, 40, cfg.Generator.MaxLength)
	require.Equal(t, 16, cfg.Generator.DefaultLength)
}

func TestYAMLLoaderMissingDefaultFileUsesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := newTestLoader(nil).Load(context.Background(), path, false)
	require.NoError(t, err)
	require.Equal(t, cfgpkg.Default(), cfg)
}

func TestYAMLLoaderMissingExplicitFileFails(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	_, err := newTestLoader(nil).Load(context.Background(), path, true)
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLLoaderRejectsDirectoryAndExtension(t *testing.T) {
	t.Parallel()

	loader := newTestLoader(nil)
	var validationErr *apperrors.ValidationError

	_, err := loader.Load(context.Background(), t.TempDir(), true)
	require.ErrorAs(t, err, &validationErr)

	_, err = loader.Load(context.Background(), writeConfig(t, "config.toml", "x = 1"), true)
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Message, ".toml")
}

func TestYAMLLoaderAppliesEnvBeforeValidation(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "config.yml", "generator:\n  min_length: 4\n")
	lookup := func(key string) (string, bool) {
		if key == cfgpkg.EnvDefaultLength {
			return "99", true
		}
		return "", false
	}

	_, err := newTestLoader(lookup).Load(context.Background(), path, true)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "generator.default_length", validationErr.Field)
}

func TestYAMLLoaderHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestLoader(nil).Load(ctx, "", false)
	require.ErrorIs(t, err, context.Canceled)
}

func TestFlattenFieldsSortsKeys(t *testing.T) {
	t.Parallel()

	require.Nil(t, flattenFields(nil))
	require.Equal(t, []interface{}{"a", 1, "b", 2}, flattenFields(map[string]interface{}{"b": 2, "a": 1}))
}
