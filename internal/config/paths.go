package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolvePath picks the configuration file: the flag value, then
// $PASSGEN_CONFIG, then DefaultPath. explicit is false only for the default
// location, whose absence is not an error.
func ResolvePath(flagValue string, lookup LookupFunc) (path string, explicit bool, err error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if p := strings.TrimSpace(flagValue); p != "" {
		return expandHome(p), true, nil
	}
	if p, ok := lookup(EnvConfig); ok && strings.TrimSpace(p) != "" {
		return expandHome(strings.TrimSpace(p)), true, nil
	}
	p, err := DefaultPath()
	return p, false, err
}

// DefaultPath returns <UserConfigDir>/passgen/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "passgen", "config.yaml"), nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
