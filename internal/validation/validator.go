package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"trivia-api/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Validator provides request validation functionality
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return &Validator{validate: v}
}

// ValidateStruct checks req against its validate tags and returns a
// bad-request domain error naming the offending fields.
func (v *Validator) ValidateStruct(req interface{}) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.NewBadRequestError("request validation failed", err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, describe(fe))
	}
	return domain.NewBadRequestError("request validation failed", err).
		WithContext("fields", fields)
}

func describe(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fmt.Sprintf("%s: %s", fe.Field(), fe.Tag())
	}
	return fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param())
}

// jsonFieldName reports fields by their JSON name so errors match the payload.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
