// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-ctf-backend/models"
	"github.com/go-playground/validator/v10"
)

// Field names accepted by AccountValidator.Validate to restrict an
// models.AccountUpdate check to selected fields.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldRole     = "role"
	FieldIsActive = "isActive"
)

// Per-field rules shared by struct tags and the partial-update path.
const (
	usernameRules = "min=3,max=64,username_format"
	emailRules    = "email,max=128"
	passwordRules = "min=1,max=72"
)

// AccountValidator validates account payloads with go-playground/validator.
type AccountValidator struct {
	validate *validator.Validate
}

// NewAccountValidator returns a [Validator] for models.AccountCreate,
// models.AccountLogin and models.AccountUpdate (values or pointers).
func NewAccountValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("username_format", validateUsernameFormat)

	return &AccountValidator{validate: v}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AccountCreate:
		return v.validateStruct(value)
	case *models.AccountCreate:
		return v.validateStruct(*value)

	case models.AccountLogin:
		return v.validateStruct(value)
	case *models.AccountLogin:
		return v.validateStruct(*value)

	case models.AccountUpdate:
		return v.validateUpdate(value, fields...)
	case *models.AccountUpdate:
		return v.validateUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateStruct checks every tagged field; create and login payloads are
// always validated whole.
func (v *AccountValidator) validateStruct(obj any) error {
	return formatValidationErrors(v.validate.Struct(obj))
}

// validateUpdate applies the create rules to every supplied field. Fields
// sent as explicit null are rejected since all of them map to NOT NULL columns.
func (v *AccountValidator) validateUpdate(update models.AccountUpdate, fields ...string) error {
	checkAll := len(fields) == 0
	selected := make(map[string]bool, len(fields))
	for _, f := range fields {
		switch f {
		case FieldUsername, FieldEmail, FieldPassword, FieldRole, FieldIsActive:
			selected[f] = true
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	want := func(field string) bool { return checkAll || selected[field] }

	var problems []string
	checkString := func(field string, opt models.Optional[string], rules string) {
		if !want(field) || !opt.Set {
			return
		}
		if opt.Null {
			problems = append(problems, nullMessage(field))
			return
		}
		if err := v.validate.Var(opt.Value, rules); err != nil {
			problems = append(problems, fieldMessages(field, err)...)
		}
	}

	checkString(FieldUsername, update.Username, usernameRules)
	checkString(FieldEmail, update.Email, emailRules)
	checkString(FieldPassword, update.Password, passwordRules)

	if want(FieldRole) && update.Role.Set {
		switch {
		case update.Role.Null:
			problems = append(problems, nullMessage(FieldRole))
		case !update.Role.Value.IsValid():
			problems = append(problems, fmt.Sprintf("%s must be one of %s, %s", FieldRole, models.RoleAdmin, models.RoleUser))
		}
	}
	if want(FieldIsActive) && update.IsActive.Set && update.IsActive.Null {
		problems = append(problems, nullMessage(FieldIsActive))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrValidationFailure, strings.Join(problems, "; "))
	}
	return nil
}

func nullMessage(field string) string {
	return fmt.Sprintf("%s %s", field, ErrNullField)
}

// validateUsernameFormat allows letters, digits and underscores only.
func validateUsernameFormat(fl validator.FieldLevel) bool {
	username := fl.Field().String()
	if username == "" {
		return false
	}

	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '_' {
			return false
		}
	}
	return true
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// formatValidationErrors flattens validator errors into one ErrValidationFailure.
func formatValidationErrors(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrValidationFailure, err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, formatFieldError(fe.Field(), fe))
	}
	return fmt.Errorf("%w: %s", ErrValidationFailure, strings.Join(messages, "; "))
}

func fieldMessages(field string, err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{fmt.Sprintf("%s is invalid", field)}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, formatFieldError(field, fe))
	}
	return messages
}

func formatFieldError(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "username_format":
		return fmt.Sprintf("%s can only contain letters, numbers, and underscores", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
