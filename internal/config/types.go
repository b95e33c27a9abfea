package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the passgen configuration document.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	UI        UIConfig        `yaml:"ui"`
	Log       LogConfig       `yaml:"log"`
}

// GeneratorConfig holds the panel props and the initial class toggles used by
// non-interactive generation.
type GeneratorConfig struct {
	MinLength     int  `yaml:"min_length" validate:"min=1,max=256"`
	MaxLength     int  `yaml:"max_length" validate:"min=1,max=256"`
	DefaultLength int  `yaml:"default_length" validate:"min=1,max=256"`
	Uppercase     bool `yaml:"uppercase"`
	Lowercase     bool `yaml:"lowercase"`
	Symbols       bool `yaml:"symbols"`
	LockLength    bool `yaml:"lock_length,omitempty"`
}

// UIConfig configures the terminal UI.
type UIConfig struct {
	Theme         string   `yaml:"theme" validate:"theme"`
	TrackWidth    int      `yaml:"track_width" validate:"min=8,max=200"`
	ToastDuration Duration `yaml:"toast_duration" validate:"min=0"`
	Mouse         bool     `yaml:"mouse"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"log_format"`
	File   string `yaml:"file,omitempty"`
}

// Duration is a time.Duration that reads and writes Go duration strings.
type Duration time.Duration

// UnmarshalYAML accepts "3s" style strings.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q: %w", value.Line, raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML writes the duration as a string.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }
