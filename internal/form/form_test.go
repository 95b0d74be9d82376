package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutor-catalog/internal/apperror"
	"tutor-catalog/internal/model"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := New(model.GoalCatalog{"travel": "Для путешествий", "work": "Для работы"})
	require.NoError(t, err)
	return v
}

func fieldErrors(t *testing.T, err error) apperror.FieldErrors {
	t.Helper()
	var fe apperror.FieldErrors
	require.True(t, errors.As(err, &fe), "expected field errors, got %v", err)
	return fe
}

func TestPhonePattern(t *testing.T) {
	valid := []string{
		"+79991234567",
		"89991234567",
		"8 (999) 123-45-67",
		"+7 999 123 45 67",
		"+7-999-123-45-67",
		"1234567",
		"(999)1234567",
	}
	for _, p := range valid {
		assert.True(t, phonePattern.MatchString(p), p)
	}

	invalid := []string{"abc", "12345", "", "+7999abc4567", "+7999123456789012", "phone: 1234567"}
	for _, p := range invalid {
		assert.False(t, phonePattern.MatchString(p), p)
	}
}

func TestInquiry(t *testing.T) {
	v := newValidator(t)

	got, err := v.Inquiry(model.InquiryForm{
		Goal:     "travel",
		FreeTime: "3-5 часов в неделю",
		Name:     "Ян",
		Phone:    "+79991234567",
	})
	require.NoError(t, err)
	assert.Equal(t, model.Inquiry{
		Goal:     "Для путешествий",
		FreeTime: "3-5 часов в неделю",
		Name:     "Ян",
		Phone:    "+79991234567",
	}, got)
}

func TestInquiry_Errors(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name  string
		form  model.InquiryForm
		field string
		kind  apperror.Kind
	}{
		{
			name:  "missing name",
			form:  model.InquiryForm{Goal: "travel", FreeTime: FreeTimeChoices[0], Name: "", Phone: "+79991234567"},
			field: "name",
			kind:  apperror.MissingField,
		},
		{
			name:  "short name",
			form:  model.InquiryForm{Goal: "travel", FreeTime: FreeTimeChoices[0], Name: "Я", Phone: "+79991234567"},
			field: "name",
			kind:  apperror.TooShort,
		},
		{
			name:  "unknown goal",
			form:  model.InquiryForm{Goal: "fun", FreeTime: FreeTimeChoices[0], Name: "Ann", Phone: "+79991234567"},
			field: "goal",
			kind:  apperror.InvalidChoice,
		},
		{
			name:  "unknown free time",
			form:  model.InquiryForm{Goal: "work", FreeTime: "всегда", Name: "Ann", Phone: "+79991234567"},
			field: "free_time",
			kind:  apperror.InvalidChoice,
		},
		{
			name:  "bad phone",
			form:  model.InquiryForm{Goal: "work", FreeTime: FreeTimeChoices[3], Name: "Ann", Phone: "12345"},
			field: "phone",
			kind:  apperror.PatternMismatch,
		},
		{
			name:  "missing phone",
			form:  model.InquiryForm{Goal: "work", FreeTime: FreeTimeChoices[3], Name: "Ann"},
			field: "phone",
			kind:  apperror.MissingField,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.Inquiry(tc.form)
			fe := fieldErrors(t, err)
			assert.Len(t, fe, 1)
			assert.True(t, fe.Has(tc.field, tc.kind), "got %v", fe)
			assert.NotEmpty(t, fe.Messages(tc.field))
		})
	}
}

func TestInquiry_ReportsAllFields(t *testing.T) {
	v := newValidator(t)

	_, err := v.Inquiry(model.InquiryForm{})
	fe := fieldErrors(t, err)

	for _, field := range []string{"goal", "free_time", "name", "phone"} {
		assert.True(t, fe.Has(field, apperror.MissingField), field)
	}
	assert.Equal(t, []string{"Введите своё имя!"}, fe.Messages("name"))
}

func TestBooking(t *testing.T) {
	v := newValidator(t)

	got, err := v.Booking(3, "mon", "14:00", model.BookingForm{ClientName: "Ann", ClientPhone: "+79991234567"})
	require.NoError(t, err)
	assert.Equal(t, model.Booking{TeacherID: 3, Name: "Ann", Phone: "+79991234567", Weekday: "mon", Time: "14:00"}, got)
}

func TestBooking_Errors(t *testing.T) {
	v := newValidator(t)

	_, err := v.Booking(3, "mon", "14:00", model.BookingForm{ClientName: "Ян", ClientPhone: "abc"})
	fe := fieldErrors(t, err)
	assert.True(t, fe.Has("client_name", apperror.TooShort))
	assert.True(t, fe.Has("client_phone", apperror.PatternMismatch))
	assert.Equal(t, []string{"Вы ввели некорректный номер телефона!"}, fe.Messages("client_phone"))

	_, err = v.Booking(3, "mon", "14:00", model.BookingForm{})
	fe = fieldErrors(t, err)
	assert.True(t, fe.Has("client_name", apperror.MissingField))
	assert.True(t, fe.Has("client_phone", apperror.MissingField))
}
