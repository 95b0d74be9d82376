package model

// InquiryForm is the raw input of the general inquiry form.
type InquiryForm struct {
	Goal     string `form:"goal" validate:"required,goal"`
	FreeTime string `form:"free_time" validate:"required,freetime"`
	Name     string `form:"name" validate:"required,min=2"`
	Phone    string `form:"phone" validate:"required,phoneformat"`
}

// BookingForm is the raw input of the lesson booking form.
type BookingForm struct {
	ClientName  string `form:"client_name" validate:"required,min=3"`
	ClientPhone string `form:"client_phone" validate:"required,phoneformat"`
}

// Inquiry is a validated inquiry as persisted. Goal holds the label, not the id.
type Inquiry struct {
	Goal     string `json:"goal"`
	FreeTime string `json:"free"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

// Booking is a validated lesson booking as persisted.
type Booking struct {
	TeacherID int    `json:"teacher_id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Weekday   string `json:"weekday"`
	Time      string `json:"time"`
}
