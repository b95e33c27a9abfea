package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"

	cfgpkg "github.com/alexisbeaulieu97/passgen/internal/config"
	"github.com/alexisbeaulieu97/passgen/internal/ports"
	apperrors "github.com/alexisbeaulieu97/passgen/pkg/errors"
)

// YAMLLoader resolves the effective configuration: YAML file on top of the
// defaults, then environment overrides, then validation.
type YAMLLoader struct {
	logger ports.Logger
	lookup cfgpkg.LookupFunc
}

// NewYAMLLoader creates a loader. A nil lookup reads the process environment.
func NewYAMLLoader(logger ports.Logger, lookup cfgpkg.LookupFunc) *YAMLLoader {
	return &YAMLLoader{logger: logger, lookup: lookup}
}

// Load reads path. When explicit is false a missing file yields the defaults.
func (l *YAMLLoader) Load(ctx context.Context, path string, explicit bool) (*cfgpkg.Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.logDebug(ctx, "loading configuration", map[string]interface{}{"path": path, "explicit": explicit})

	cfg, err := l.read(ctx, path, explicit)
	if err != nil {
		l.logError(ctx, "failed to read configuration", err, map[string]interface{}{"path": path})
		return nil, err
	}

	if err := cfgpkg.ApplyEnv(cfg, l.lookup); err != nil {
		l.logError(ctx, "invalid environment override", err, nil)
		return nil, err
	}

	if err := cfgpkg.ValidateConfig(cfg); err != nil {
		l.logError(ctx, "configuration failed validation", err, map[string]interface{}{"path": path})
		return nil, err
	}

	l.logInfo(ctx, "configuration loaded", map[string]interface{}{
		"path":           path,
		"min_length":     cfg.Generator.MinLength,
		"max_length":     cfg.Generator.MaxLength,
		"default_length": cfg.Generator.DefaultLength,
		"theme":          cfg.UI.Theme,
	})
	return cfg, nil
}

func (l *YAMLLoader) read(ctx context.Context, path string, explicit bool) (*cfgpkg.Config, error) {
	if path == "" {
		return cfgpkg.Default(), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			l.logDebug(ctx, "no configuration file, using defaults", map[string]interface{}{"path": path})
			return cfgpkg.Default(), nil
		}
		return nil, apperrors.NewParseError(path, 0, err)
	}
	if info.IsDir() {
		return nil, apperrors.NewValidationError("config", "configuration path is a directory", nil)
	}

	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
	default:
		return nil, apperrors.NewValidationError("config", "unsupported configuration file extension "+ext, nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}
	return cfgpkg.Parse(path, data)
}

func (l *YAMLLoader) logDebug(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Debug(ctx, msg, flattenFields(fields)...)
}

func (l *YAMLLoader) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Info(ctx, msg, flattenFields(fields)...)
}

func (l *YAMLLoader) logError(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	payload := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["error"] = err
	l.logger.Error(ctx, msg, flattenFields(payload)...)
}

func flattenFields(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]interface{}, 0, len(fields)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}
