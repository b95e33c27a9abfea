package config

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/passgen/internal/ui/theme"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	logFormats = map[string]struct{}{"text": {}, "json": {}}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			_, err := theme.ByName(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("log_format", func(fl validator.FieldLevel) bool {
			_, ok := logFormats[strings.ToLower(fl.Field().String())]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
