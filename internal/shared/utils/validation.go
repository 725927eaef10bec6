package utils

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/deskhub/deskhub/internal/shared/errors"
)

var (
	validate     *validator.Validate
	customRuleMu sync.Mutex
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonTagName)
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	}
	return name
}

// RegisterValidation adds a custom rule to the package validator and to
// gin's binding validator so the tag works in both ValidateStruct and
// ShouldBind* calls.
func RegisterValidation(tag string, fn validator.Func) error {
	customRuleMu.Lock()
	defer customRuleMu.Unlock()

	if err := validate.RegisterValidation(tag, fn); err != nil {
		return fmt.Errorf("register %s: %w", tag, err)
	}
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonTagName)
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register binding %s: %w", tag, err)
		}
	}
	return nil
}

// ValidateStruct validates s and returns a ValidationError listing every
// failing field.
func ValidateStruct(s interface{}) error {
	return TranslateBindError(validate.Struct(s))
}

// TranslateBindError turns binding and validation failures into a
// ValidationError. Malformed bodies become a generic message.
func TranslateBindError(err error) error {
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !stderrors.As(err, &validationErrors) {
		return errors.NewValidationError("Invalid request body", err.Error())
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, fieldErrorMessage(fe))
	}
	return errors.NewValidationError("Validation failed", strings.Join(messages, "; "))
}

func fieldErrorMessage(fe validator.FieldError) string {
	field, param := fe.Field(), fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "datetime":
		return fmt.Sprintf("%s must be a date formatted as %s", field, param)
	case "ticket_status":
		return fmt.Sprintf("%s must be one of Open, In Progress, Resolved, Closed", field)
	case "user_role":
		return fmt.Sprintf("%s must be one of employee, it_staff, admin", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}
