// Package view renders the HTML pages of the site.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"tutor-catalog/internal/apperror"
	"tutor-catalog/internal/model"
	"tutor-catalog/internal/schedule"
)

//go:embed templates/*.html
var files embed.FS

// Page names accepted by Render.
const (
	Index       = "index.html"
	Goal        = "goal.html"
	Profile     = "profile.html"
	Request     = "request.html"
	RequestDone = "request_done.html"
	Booking     = "booking.html"
	BookingDone = "booking_done.html"
)

// CatalogPage backs the index and goal listings.
type CatalogPage struct {
	Goals     model.GoalCatalog
	Tutors    []model.Tutor
	GoalLabel string
	ShowAll   bool
}

type ProfilePage struct {
	Tutor model.Tutor
	Goals model.GoalCatalog
	Week  []schedule.Day
}

type RequestPage struct {
	Form      model.InquiryForm
	Errors    apperror.FieldErrors
	Goals     model.GoalCatalog
	FreeTimes []string
}

type RequestDonePage struct {
	Inquiry model.Inquiry
}

type BookingPage struct {
	Tutor   model.Tutor
	Day     string
	DayName string
	Time    string
	Form    model.BookingForm
	Errors  apperror.FieldErrors
}

type BookingDonePage struct {
	Booking model.Booking
	DayName string
}

var funcs = template.FuncMap{
	"compact": schedule.Compact,
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page together with the shared layout.
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{Index, Goal, Profile, Request, RequestDone, Booking, BookingDone} {
		t, err := template.New(page).Funcs(funcs).ParseFS(files, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

// Render executes page into w. Nothing is written to w if execution fails.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
