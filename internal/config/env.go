package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	passgenerrors "github.com/alexisbeaulieu97/passgen/pkg/errors"
)

// Environment variables that override file values.
const (
	EnvConfig        = "PASSGEN_CONFIG"
	EnvMinLength     = "PASSGEN_MIN_LENGTH"
	EnvMaxLength     = "PASSGEN_MAX_LENGTH"
	EnvDefaultLength = "PASSGEN_DEFAULT_LENGTH"
	EnvTheme         = "PASSGEN_THEME"
	EnvLogLevel      = "PASSGEN_LOG_LEVEL"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(string) (string, bool)

// LoadDotEnv loads variables from path into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return passgenerrors.NewParseError(path, 0, err)
	}
	return nil
}

// ApplyEnv overrides cfg fields from the environment. Pass nil to use
// os.LookupEnv.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	ints := []struct {
		name   string
		target *int
	}{
		{EnvMinLength, &cfg.Generator.MinLength},
		{EnvMaxLength, &cfg.Generator.MaxLength},
		{EnvDefaultLength, &cfg.Generator.DefaultLength},
	}
	for _, entry := range ints {
		raw, ok := lookup(entry.name)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return passgenerrors.NewValidationError(entry.name, "must be an integer", err)
		}
		*entry.target = n
	}

	if raw, ok := lookup(EnvTheme); ok && strings.TrimSpace(raw) != "" {
		cfg.UI.Theme = strings.TrimSpace(raw)
	}
	if raw, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(raw) != "" {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(raw))
	}
	return nil
}
