// Package validation holds the request checks shared by handlers and services:
// struct tag validation, numeric parsing, path ids and date formats.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
	ginOnce      sync.Once
)

// jsonFieldName reports struct fields by their JSON name so errors match the request body.
func jsonFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// Validator returns the shared validator. It reads the same "binding" tags gin uses.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.SetTagName("binding")
		validate.RegisterTagNameFunc(jsonFieldName)
	})
	return validate
}

// RegisterWithGin makes gin's binding validator report JSON field names.
func RegisterWithGin() {
	ginOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(jsonFieldName)
		}
	})
}

// Struct checks s against its binding tags and returns the first failure as a validation error.
func Struct(s any) error {
	if err := Validator().Struct(s); err != nil {
		return FromBindError(err)
	}
	return nil
}

// FromBindError converts an error from gin's ShouldBind* or the validator into a validation AppError.
func FromBindError(err error) error {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return fieldError(ve[0])
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperrors.NewValidationError(typeErr.Field, fmt.Sprintf("Invalid value for %s", typeErr.Field))
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &apperrors.AppError{Code: 400, Message: "Invalid request format: " + err.Error(), Err: err}
}

func fieldError(fe validator.FieldError) error {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return apperrors.NewValidationError(field, "Missing required fields: "+field)
	case "oneof":
		return apperrors.NewValidationError(field, fmt.Sprintf("%s must be one of [%s]", field, fe.Param()))
	case "max":
		return apperrors.NewValidationError(field, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
	case "min":
		return apperrors.NewValidationError(field, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
	}
	return apperrors.NewValidationError(field, fmt.Sprintf("Invalid value for %s", field))
}
