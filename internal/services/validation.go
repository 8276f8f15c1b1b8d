package services

import (
	"TrailGuide/internal/helpers"
	"TrailGuide/internal/models"
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var utmZonePattern = regexp.MustCompile(`^\d{1,2}[C-HJ-NP-X]$`)

// NewValidator returns a validator that reports fields by their JSON names
// and knows the utmzone and monthday tags.
func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	_ = validate.RegisterValidation("utmzone", func(fl validator.FieldLevel) bool {
		return utmZonePattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("monthday", func(fl validator.FieldLevel) bool {
		return helpers.IsMonthDay(fl.Field().String())
	})
	return validate
}

// validateStruct runs the struct tags of v and converts failures into a
// *models.ValidationError.
func validateStruct(ctx context.Context, validate *validator.Validate, v interface{}) error {
	err := validate.StructCtx(ctx, v)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return models.NewValidationError(err.Error())
	}
	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, describeFieldError(fe))
	}
	return models.NewValidationError(messages...)
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "monthday":
		return fmt.Sprintf("%s must be a MM-DD date", field)
	case "utmzone":
		return fmt.Sprintf("%s is not a UTM zone", field)
	default:
		return fmt.Sprintf("%s failed the %s check", field, fe.Tag())
	}
}
