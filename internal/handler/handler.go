// Package handler contains the HTTP handlers and routes of the tutor site.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"tutor-catalog/internal/apperror"
	"tutor-catalog/internal/catalog"
	"tutor-catalog/internal/form"
	"tutor-catalog/internal/model"
	"tutor-catalog/internal/schedule"
	"tutor-catalog/internal/submission"
	"tutor-catalog/internal/view"
)

const (
	notFoundMessage    = "Ничего не нашлось! Вот неудача, отправляйтесь на главную!"
	serverErrorMessage = "Что-то не так, но мы все починим"
)

// Handler wraps HTTP handlers with the catalog, form validation and submission storage.
type Handler struct {
	log        *zap.Logger
	catalog    *catalog.Catalog
	form       *form.Validator
	store      submission.Writer
	views      *view.Renderer
	sampleSize int
}

// New creates a new Handler instance.
func New(log *zap.Logger, c *catalog.Catalog, f *form.Validator, store submission.Writer, views *view.Renderer, sampleSize int) *Handler {
	return &Handler{log: log, catalog: c, form: f, store: store, views: views, sampleSize: sampleSize}
}

// Routes mounts every page on a chi router. Trailing slashes are optional.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.StripSlashes)
	r.Use(h.logRequests)
	r.Use(h.recoverer)

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.NotFound)

	r.Get("/healthz", h.Healthz)
	r.Get("/", h.Index)
	r.Get("/all", h.All)
	r.Get("/goals/{goal}", h.GoalTutors)
	r.Get("/profile/{teacherID}", h.Profile)
	r.Get("/request", h.RequestForm)
	r.Post("/request", h.SubmitRequest)
	r.Get("/booking/{teacherID}/{day}/{time}", h.BookingForm)
	r.Post("/booking/{teacherID}/{day}/{time}", h.SubmitBooking)
	return r
}

// Healthz is a simple health check endpoint.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// Index shows a random sample of tutors.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.Index, view.CatalogPage{
		Goals:  h.catalog.Goals(),
		Tutors: h.catalog.Sample(h.sampleSize),
	})
}

// All shows every tutor.
func (h *Handler) All(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.Index, view.CatalogPage{
		Goals:   h.catalog.Goals(),
		Tutors:  h.catalog.All(),
		ShowAll: true,
	})
}

// GoalTutors lists tutors tagged with a goal. Unknown goals yield an empty list.
func (h *Handler) GoalTutors(w http.ResponseWriter, r *http.Request) {
	goal := chi.URLParam(r, "goal")
	label, ok := h.catalog.GoalLabel(goal)
	if !ok {
		label = goal
	}
	h.render(w, r, view.Goal, view.CatalogPage{
		Goals:     h.catalog.Goals(),
		Tutors:    h.catalog.ByGoal(goal),
		GoalLabel: label,
	})
}

// Profile shows one tutor with the weekly schedule.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	tutor, err := h.tutor(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, view.Profile, view.ProfilePage{
		Tutor: tutor,
		Goals: h.catalog.Goals(),
		Week:  schedule.Week,
	})
}

// RequestForm shows the empty inquiry form.
func (h *Handler) RequestForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.Request, h.requestPage(model.InquiryForm{}, nil))
}

// SubmitRequest validates and stores an inquiry. Invalid input re-renders the form.
func (h *Handler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.log.Warn("failed to parse form", zap.Error(err))
		http.Error(w, "invalid request payload", http.StatusBadRequest)
		return
	}
	in := model.InquiryForm{
		Goal:     r.PostForm.Get("goal"),
		FreeTime: r.PostForm.Get("free_time"),
		Name:     r.PostForm.Get("name"),
		Phone:    r.PostForm.Get("phone"),
	}

	inquiry, err := h.form.Inquiry(in)
	var fe apperror.FieldErrors
	if errors.As(err, &fe) {
		h.log.Warn("validation failed", zap.String("form", "request"), zap.Error(err))
		h.render(w, r, view.Request, h.requestPage(in, fe))
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.store.AppendInquiry(inquiry); err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, view.RequestDone, view.RequestDonePage{Inquiry: inquiry})
}

// BookingForm shows the booking form for a tutor's slot.
func (h *Handler) BookingForm(w http.ResponseWriter, r *http.Request) {
	page, err := h.bookingPage(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, view.Booking, page)
}

// SubmitBooking validates and stores a booking. Invalid input re-renders the form.
func (h *Handler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	page, err := h.bookingPage(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.log.Warn("failed to parse form", zap.Error(err))
		http.Error(w, "invalid request payload", http.StatusBadRequest)
		return
	}
	page.Form = model.BookingForm{
		ClientName:  r.PostForm.Get("client_name"),
		ClientPhone: r.PostForm.Get("client_phone"),
	}

	booking, err := h.form.Booking(page.Tutor.ID, page.Day, page.Time, page.Form)
	var fe apperror.FieldErrors
	if errors.As(err, &fe) {
		h.log.Warn("validation failed", zap.String("form", "booking"), zap.Error(err))
		page.Errors = fe
		h.render(w, r, view.Booking, page)
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.store.AppendBooking(booking); err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, view.BookingDone, view.BookingDonePage{Booking: booking, DayName: page.DayName})
}

// NotFound answers unmatched paths.
func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, notFoundMessage, http.StatusNotFound)
}

func (h *Handler) requestPage(in model.InquiryForm, fe apperror.FieldErrors) view.RequestPage {
	return view.RequestPage{
		Form:      in,
		Errors:    fe,
		Goals:     h.catalog.Goals(),
		FreeTimes: form.FreeTimeChoices,
	}
}

func (h *Handler) bookingPage(r *http.Request) (view.BookingPage, error) {
	tutor, err := h.tutor(r)
	if err != nil {
		return view.BookingPage{}, err
	}
	day := chi.URLParam(r, "day")
	dayName, ok := schedule.DayName(day)
	if !ok {
		return view.BookingPage{}, apperror.ErrNotFound
	}
	at, err := schedule.ParseCompact(chi.URLParam(r, "time"))
	if err != nil {
		return view.BookingPage{}, err
	}
	return view.BookingPage{Tutor: tutor, Day: day, DayName: dayName, Time: at}, nil
}

func (h *Handler) tutor(r *http.Request) (model.Tutor, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "teacherID"))
	if err != nil {
		return model.Tutor{}, apperror.ErrNotFound
	}
	return h.catalog.ByID(id)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.views.Render(w, page, data); err != nil {
		h.fail(w, r, err)
	}
}

// fail maps err to the static 404 or 500 response.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, apperror.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	h.log.Error("request failed",
		zap.String("path", r.URL.Path),
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.Error(err))
	http.Error(w, serverErrorMessage, http.StatusInternalServerError)
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			h.log.Error("panic serving request", zap.Any("panic", rec), zap.Stack("stack"))
			http.Error(w, serverErrorMessage, http.StatusInternalServerError)
		}()
		next.ServeHTTP(w, r)
	})
}
