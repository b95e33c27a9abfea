package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	passgenerrors "github.com/alexisbeaulieu97/passgen/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return passgenerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	gen := cfg.Generator
	if gen.MinLength > gen.MaxLength {
		return passgenerrors.NewValidationError("generator.min_length",
			fmt.Sprintf("min_length %d exceeds max_length %d", gen.MinLength, gen.MaxLength), nil)
	}
	if gen.DefaultLength < gen.MinLength || gen.DefaultLength > gen.MaxLength {
		return passgenerrors.NewValidationError("generator.default_length",
			fmt.Sprintf("default_length %d outside [%d, %d]", gen.DefaultLength, gen.MinLength, gen.MaxLength), nil)
	}

	return nil
}

// convertValidationError normalizes validator errors into passgen validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return passgenerrors.NewValidationError(field, msg, err)
	}

	return passgenerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns Config.Generator.MinLength into generator.min_length.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = snakeCase(part)
	}
	return strings.Join(parts, ".")
}

func snakeCase(s string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range s {
		upper := r >= 'A' && r <= 'Z'
		if upper {
			if prevLower {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		prevLower = !upper
		b.WriteRune(r)
	}
	return b.String()
}
