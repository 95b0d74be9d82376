// Package form validates inquiry and booking submissions.
package form

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"tutor-catalog/internal/apperror"
	"tutor-catalog/internal/model"
)

// FreeTimeChoices are the accepted answers to "how much time can you spend".
var FreeTimeChoices = []string{
	"1-2 часа в неделю",
	"3-5 часов в неделю",
	"5-7 часов в неделю",
	"7-10 часов в неделю",
}

var phonePattern = regexp.MustCompile(`^((8|\+7)[\- ]?)?(\(?\d{3}\)?[\- ]?)?[\d\- ]{7,10}$`)

// PhoneValidator accepts Russian style numbers such as +7 (999) 123-45-67.
var PhoneValidator = func(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

// FreeTimeValidator accepts one of FreeTimeChoices.
var FreeTimeValidator = func(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	for _, c := range FreeTimeChoices {
		if v == c {
			return true
		}
	}
	return false
}

// Validator checks raw form input and produces records ready to persist.
type Validator struct {
	validate *validator.Validate
	goals    model.GoalCatalog
}

// New creates a Validator whose goal choices come from goals.
func New(goals model.GoalCatalog) (*Validator, error) {
	v := &Validator{validate: validator.New(), goals: goals}

	v.validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	if err := v.validate.RegisterValidation("phoneformat", PhoneValidator); err != nil {
		return nil, err
	}
	if err := v.validate.RegisterValidation("freetime", FreeTimeValidator); err != nil {
		return nil, err
	}
	if err := v.validate.RegisterValidation("goal", func(fl validator.FieldLevel) bool {
		_, ok := v.goals[fl.Field().String()]
		return ok
	}); err != nil {
		return nil, err
	}
	return v, nil
}

// Inquiry validates an inquiry form. Failures are returned as apperror.FieldErrors
// covering every invalid field. The goal is resolved to its label on success.
func (v *Validator) Inquiry(f model.InquiryForm) (model.Inquiry, error) {
	if err := v.validate.Struct(f); err != nil {
		return model.Inquiry{}, apperror.CustomValidationError(err)
	}
	return model.Inquiry{
		Goal:     v.goals[f.Goal],
		FreeTime: f.FreeTime,
		Name:     f.Name,
		Phone:    f.Phone,
	}, nil
}

// Booking validates a booking form for the given tutor and slot.
func (v *Validator) Booking(teacherID int, day, at string, f model.BookingForm) (model.Booking, error) {
	if err := v.validate.Struct(f); err != nil {
		return model.Booking{}, apperror.CustomValidationError(err)
	}
	return model.Booking{
		TeacherID: teacherID,
		Name:      f.ClientName,
		Phone:     f.ClientPhone,
		Weekday:   day,
		Time:      at,
	}, nil
}
