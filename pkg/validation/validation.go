// Package validation проверка входных структур через go-playground/validator
// с ошибками по полям в формате map[поле][]сообщения
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/court-booking/pkg/timerange"
	"github.com/m04kA/court-booking/pkg/types"
)

// ErrValidation базовая ошибка валидации, *Error разворачивается в нее
var ErrValidation = errors.New("validation failed")

// Error ошибки валидации по полям
type Error struct {
	Fields map[string][]string
}

// NewError создает пустую ошибку валидации
func NewError() *Error {
	return &Error{Fields: make(map[string][]string)}
}

// Add добавляет сообщение к полю
func (e *Error) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// Empty нет ни одной ошибки
func (e *Error) Empty() bool {
	return len(e.Fields) == 0
}

// OrNil возвращает nil для пустой ошибки
func (e *Error) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *Error) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e.Fields[f], "; "))
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, ", "))
}

func (e *Error) Unwrap() error {
	return ErrValidation
}

// Validator валидатор структур
type Validator struct {
	validate *validator.Validate
}

// New создает валидатор с правилами сервиса:
// time_of_day (HH:MM или HH:MM:SS) и date (YYYY-MM-DD)
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("time_of_day", func(fl validator.FieldLevel) bool {
		_, err := timerange.Parse(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := types.ParseDate(fl.Field().String())
		return err == nil
	})

	return &Validator{validate: v}
}

// Struct проверяет структуру и возвращает *Error или nil
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	result := NewError()
	for _, fe := range fieldErrs {
		result.Add(fe.Field(), message(fe))
	}
	return result
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "required_without":
		return fmt.Sprintf("The %s field is required.", field)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s may not be greater than %s characters.", field, fe.Param())
		}
		return fmt.Sprintf("The %s may not be greater than %s.", field, fe.Param())
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s must be at least %s characters.", field, fe.Param())
		}
		return fmt.Sprintf("The %s must be at least %s.", field, fe.Param())
	case "gt":
		return fmt.Sprintf("The %s must be greater than %s.", field, fe.Param())
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", field)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	case "time_of_day":
		return fmt.Sprintf("The %s does not match the format HH:MM.", field)
	case "date":
		return fmt.Sprintf("The %s is not a valid date (YYYY-MM-DD).", field)
	default:
		return fmt.Sprintf("The %s is invalid.", field)
	}
}
