package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	passgenerrors "github.com/alexisbeaulieu97/passgen/pkg/errors"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, ValidateConfig(cfg))
	assert.Equal(t, 8, cfg.Generator.MinLength)
	assert.Equal(t, 20, cfg.Generator.MaxLength)
	assert.Equal(t, 12, cfg.Generator.DefaultLength)
	assert.True(t, cfg.Generator.Uppercase)
	assert.True(t, cfg.Generator.Lowercase)
	assert.False(t, cfg.Generator.Symbols)
	assert.Equal(t, 3*time.Second, cfg.UI.ToastDuration.Std())
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "partial file keeps defaults",
			contents: `generator:
  max_length: 32
  symbols: true
ui:
  theme: dark
  toast_duration: 1500ms
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, 32, cfg.Generator.MaxLength)
				require.Equal(t, 8, cfg.Generator.MinLength)
				require.True(t, cfg.Generator.Symbols)
				require.True(t, cfg.Generator.Uppercase)
				require.Equal(t, "dark", cfg.UI.Theme)
				require.Equal(t, 1500*time.Millisecond, cfg.UI.ToastDuration.Std())
			},
		},
		{
			name:     "invalid yaml returns parse error with line",
			contents: "generator:\n  min_length: [1, 2]\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *passgenerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name:     "bad duration returns parse error",
			contents: "ui:\n  toast_duration: soon\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *passgenerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "invalid duration")
			},
		},
		{
			name:     "unknown theme fails validation",
			contents: "ui:\n  theme: neon\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *passgenerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "ui.theme", validationErr.Field)
			},
		},
		{
			name:     "default outside range fails validation",
			contents: "generator:\n  min_length: 10\n  max_length: 16\n  default_length: 20\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *passgenerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "generator.default_length", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := ParseConfig(writeFile(t, tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *passgenerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{name: "nil config", field: "config"},
		{name: "min above max", mutate: func(c *Config) { c.Generator.MinLength = 30 }, field: "generator.min_length"},
		{name: "zero length", mutate: func(c *Config) { c.Generator.MinLength = 0 }, field: "generator.min_length"},
		{name: "narrow track", mutate: func(c *Config) { c.UI.TrackWidth = 2 }, field: "ui.track_width"},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "trace" }, field: "log.level"},
		{name: "bad format", mutate: func(c *Config) { c.Log.Format = "xml" }, field: "log.format"},
		{name: "valid", mutate: func(c *Config) { c.Log.Format = "json" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var cfg *Config
			if tt.mutate != nil {
				cfg = Default()
				tt.mutate(cfg)
			}
			err := ValidateConfig(cfg)
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			var validationErr *passgenerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		EnvMinLength:     "6",
		EnvMaxLength:     " 24 ",
		EnvDefaultLength: "10",
		EnvTheme:         "dark",
		EnvLogLevel:      "DEBUG",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, ApplyEnv(cfg, lookup))
	assert.Equal(t, 6, cfg.Generator.MinLength)
	assert.Equal(t, 24, cfg.Generator.MaxLength)
	assert.Equal(t, 10, cfg.Generator.DefaultLength)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, "debug", cfg.Log.Level)
	require.NoError(t, ValidateConfig(cfg))

	env[EnvMinLength] = "six"
	err := ApplyEnv(Default(), lookup)
	var validationErr *passgenerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, EnvMinLength, validationErr.Field)
}

func TestLoadDotEnv(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PASSGEN_TEST_DOTENV=loaded\n"), 0o600))
	t.Setenv("PASSGEN_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("PASSGEN_TEST_DOTENV"))

	require.NoError(t, LoadDotEnv(path))
	require.Equal(t, "loaded", os.Getenv("PASSGEN_TEST_DOTENV"))
}

func TestResolvePath(t *testing.T) {
	t.Parallel()

	none := func(string) (string, bool) { return "", false }

	path, explicit, err := ResolvePath("/tmp/custom.yaml", none)
	require.NoError(t, err)
	assert.True(t, explicit)
	assert.Equal(t, "/tmp/custom.yaml", path)

	fromEnv := func(key string) (string, bool) {
		if key == EnvConfig {
			return "/etc/passgen.yaml", true
		}
		return "", false
	}
	path, explicit, err = ResolvePath("", fromEnv)
	require.NoError(t, err)
	assert.True(t, explicit)
	assert.Equal(t, "/etc/passgen.yaml", path)

	path, explicit, err = ResolvePath("", none)
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	assert.False(t, explicit)
	assert.Equal(t, filepath.Join("passgen", "config.yaml"), filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path)))
}

func TestMarshalRoundTripsDurations(t *testing.T) {
	t.Parallel()

	data, err := Marshal(Default())
	require.NoError(t, err)
	require.Contains(t, string(data), "toast_duration: 3s")
	require.Contains(t, string(data), "min_length: 8")

	cfg, err := Parse("inline", data)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestGetValidatorIsShared(t *testing.T) {
	t.Parallel()
	require.Same(t, GetValidator(), GetValidator())
}
