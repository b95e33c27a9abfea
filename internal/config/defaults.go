package config

import "time"

const (
	DefaultMinLength     = 8
	DefaultMaxLength     = 20
	DefaultDefaultLength = 12
	DefaultTheme         = "light"
	DefaultTrackWidth    = 32
	DefaultToastDuration = 3 * time.Second
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Generator: GeneratorConfig{
			MinLength:     DefaultMinLength,
			MaxLength:     DefaultMaxLength,
			DefaultLength: DefaultDefaultLength,
			Uppercase:     true,
			Lowercase:     true,
			Symbols:       false,
		},
		UI: UIConfig{
			Theme:         DefaultTheme,
			TrackWidth:    DefaultTrackWidth,
			ToastDuration: Duration(DefaultToastDuration),
			Mouse:         true,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
