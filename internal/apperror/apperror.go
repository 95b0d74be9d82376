// Package apperror provides the application error taxonomy and maps validation errors to form messages.
package apperror

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrNotFound is returned when a tutor, weekday or path segment does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrStartup marks catalog or data files that prevent the server from starting.
	ErrStartup = errors.New("startup failure")
	// ErrPersistence marks a submission file that could not be read or written.
	ErrPersistence = errors.New("persistence failure")
)

// Kind classifies a user input error.
type Kind string

const (
	MissingField    Kind = "missing_field"
	InvalidChoice   Kind = "invalid_choice"
	TooShort        Kind = "too_short"
	PatternMismatch Kind = "pattern_mismatch"
)

// FieldError is a single problem with one form field.
type FieldError struct {
	Kind    Kind
	Message string
}

// FieldErrors maps a form field name to every problem found with it.
type FieldErrors map[string][]FieldError

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		for _, e := range fe[f] {
			parts = append(parts, fmt.Sprintf("%s: %s", f, e.Kind))
		}
	}
	return "invalid form: " + strings.Join(parts, ", ")
}

// Add records a problem with field.
func (fe FieldErrors) Add(field string, kind Kind, msg string) {
	fe[field] = append(fe[field], FieldError{Kind: kind, Message: msg})
}

// Messages returns the human readable messages for field.
func (fe FieldErrors) Messages(field string) []string {
	msgs := make([]string, 0, len(fe[field]))
	for _, e := range fe[field] {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

// Has reports whether field failed with kind.
func (fe FieldErrors) Has(field string, kind Kind) bool {
	for _, e := range fe[field] {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

var tagKinds = map[string]Kind{
	"required":    MissingField,
	"goal":        InvalidChoice,
	"freetime":    InvalidChoice,
	"min":         TooShort,
	"phoneformat": PatternMismatch,
}

var customErrors = map[string]string{
	"InquiryForm.Goal.required":           "Выберите цель занятий!",
	"InquiryForm.Goal.goal":               "Выберите цель из списка!",
	"InquiryForm.FreeTime.required":       "Выберите свободное время!",
	"InquiryForm.FreeTime.freetime":       "Выберите время из списка!",
	"InquiryForm.Name.required":           "Введите своё имя!",
	"InquiryForm.Name.min":                "Имя не может быть меньше 2 символов!",
	"InquiryForm.Phone.required":          "Введите ваш номер!",
	"InquiryForm.Phone.phoneformat":       "Некорректный номер телефона!",
	"BookingForm.ClientName.required":     "Введите своё имя!",
	"BookingForm.ClientName.min":          "Имя не может быть меньше 3 символов!",
	"BookingForm.ClientPhone.required":    "Введите свой номер телефона!",
	"BookingForm.ClientPhone.phoneformat": "Вы ввели некорректный номер телефона!",
}

// CustomValidationError converts validator errors into per-field form errors.
// Errors of any other type are returned unchanged.
func CustomValidationError(err error) error {
	var validationErr validator.ValidationErrors
	if !errors.As(err, &validationErr) {
		return err
	}

	fe := make(FieldErrors)
	for _, e := range validationErr {
		key := e.StructNamespace() + "." + e.Tag()

		kind, ok := tagKinds[e.Tag()]
		if !ok {
			kind = InvalidChoice
		}
		msg, ok := customErrors[key]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", e.Field())
		}
		fe.Add(e.Field(), kind, msg)
	}
	return fe
}
