package validators

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-projects-api/models"
	"github.com/go-playground/validator/v10"
)

// Struct field names accepted by Validate for partial validation. They are
// not the keys of ValidationError.Fields, which uses JSON names.
const (
	FieldEmail           = "Email"
	FieldPassword        = "Password"
	FieldConfirmPassword = "ConfirmPassword"
)

const tagPasswordPolicy = "password_policy"

// RequestValidator implements Validator for the API request models using
// go-playground/validator struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator builds a RequestValidator. Field errors are keyed by
// JSON tag names.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails for an empty tag or nil func
	_ = v.RegisterValidation(tagPasswordPolicy, func(fl validator.FieldLevel) bool {
		return passwordPolicyViolation(fl.Field().String()) == ""
	})

	return &RequestValidator{validate: v}
}

// Validate checks obj against its struct tags. When fields are given only
// those struct fields are checked.
//
// Supported types:
//   - models.RegisterRequest / *models.RegisterRequest
//   - models.CreateProjectRequest / *models.CreateProjectRequest
//
// Returns *ValidationError for invalid input and ErrUnsupportedType for
// anything else.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateStruct(ctx, &value, fields...)
	case *models.RegisterRequest:
		return v.validateStruct(ctx, value, fields...)

	case models.CreateProjectRequest:
		return v.validateStruct(ctx, &value, fields...)
	case *models.CreateProjectRequest:
		return v.validateStruct(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return ErrUnsupportedType
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	out := make(map[string]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		out[fe.Field()] = formatFieldError(fe)
	}

	return &ValidationError{Fields: out}
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "eqfield":
		return "Passwords do not match."
	case tagPasswordPolicy:
		password, _ := fe.Value().(string)
		return passwordPolicyViolation(password)
	default:
		return "validation failed for '" + fe.Tag() + "'"
	}
}
