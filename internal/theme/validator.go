package theme

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	vizerrors "github.com/alexisbeaulieu97/econviz/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	templatePattern = regexp.MustCompile(`^[a-z0-9_]+$`)
)

// validatorInstance configures and returns the shared validator used for theme documents.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("template_id", func(fl validator.FieldLevel) bool {
			return templatePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("theme_color", func(fl validator.FieldLevel) bool {
			_, err := ParseColor(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks a decoded theme against the required and optional key rules.
func Validate(t Theme) error {
	if err := validatorInstance().Struct(t); err != nil {
		return convertValidationError(t.Name, err)
	}
	return nil
}

// convertValidationError reports the first failing field using its YAML key.
func convertValidationError(themeName string, err error) error {
	ves, ok := err.(validator.ValidationErrors)
	if !ok || len(ves) == 0 {
		return vizerrors.NewValidationError(themeName, err.Error(), err)
	}

	fe := ves[0]
	field := yamlishFieldName(fe)
	if themeName != "" {
		field = themeName + "." + field
	}
	msg := fmt.Sprintf("%s failed validation for tag '%s'", fieldLabel(fe), fe.Tag())
	if fe.Value() != nil && fe.Kind() == reflect.String && fe.Value() != "" {
		msg = fmt.Sprintf("%s (got %q)", msg, fe.Value())
	}
	return vizerrors.NewValidationError(field, msg, err)
}

// yamlishFieldName drops the struct name from the namespace, leaving e.g.
// "color_palette[1]".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func fieldLabel(fe validator.FieldError) string {
	name := fe.Field()
	if idx := strings.Index(name, "["); idx >= 0 {
		return name[:idx]
	}
	return name
}
