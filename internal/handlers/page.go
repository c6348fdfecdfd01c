package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"navjot.dev/internal/contact"
	"navjot.dev/internal/models"
	"navjot.dev/internal/services"
	"navjot.dev/internal/views"
)

// SessionCookie identifies a visitor's contact form
const SessionCookie = "contact_session"

// Messages shown above the contact form when a submission is rejected
const (
	msgMissingFields = "Please fill in your name, email and message."
	msgFailed        = "Something went wrong. Please try again."
)

// PageHandler renders the home page and accepts contact submissions
type PageHandler struct {
	portfolio *models.Portfolio
	contact   *services.ContactService
	logger    *zap.Logger
	now       func() time.Time
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(p *models.Portfolio, cs *services.ContactService, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		portfolio: p,
		contact:   cs,
		logger:    logger,
		now:       time.Now,
	}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	form, err := h.contact.Form(r.Context(), sessionID(r))
	if err != nil {
		h.logger.Warn("Failed to load contact form", zap.Error(err))
		form = contact.Form{}
	}

	h.render(w, r, http.StatusOK, form, "")
}

// SubmitContact handles POST /contact
func (h *PageHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, contact.Form{}, msgMissingFields)
		return
	}
	state := models.FormState{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Message: r.PostForm.Get("message"),
	}

	form, err := h.contact.Submit(r.Context(), ensureSession(w, r), state)
	switch {
	case err == nil:
		http.Redirect(w, r, "/#contact", http.StatusSeeOther)
	case errors.Is(err, services.ErrMissingField):
		h.render(w, r, http.StatusBadRequest, form, msgMissingFields)
	case errors.Is(err, contact.ErrSubmissionPending):
		h.render(w, r, http.StatusConflict, form, "")
	default:
		h.logger.Error("Contact submission failed", zap.Error(err))
		h.render(w, r, http.StatusInternalServerError, contact.Form{State: state}, msgFailed)
	}
}

// SubmitContactJSON handles POST /api/contact
func (h *PageHandler) SubmitContactJSON(w http.ResponseWriter, r *http.Request) {
	var req models.FormState
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	form, err := h.contact.Submit(r.Context(), ensureSession(w, r), req)
	switch {
	case err == nil:
		respondJSON(w, http.StatusAccepted, form)
	case errors.Is(err, services.ErrMissingField):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, contact.ErrSubmissionPending):
		respondJSON(w, http.StatusConflict, form)
	default:
		h.logger.Error("Contact submission failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal error")
	}
}

// GetPortfolio handles GET /api/portfolio
func (h *PageHandler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.portfolio)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, form contact.Form, message string) {
	page := views.Page{
		Portfolio: h.portfolio,
		Menu:      views.Menu{Open: r.URL.Query().Get("menu") == "open"},
		Contact: views.ContactForm{
			Form:    form,
			Error:   message,
			ResetIn: form.Remaining(h.now()),
		},
	}
	views.Handler(views.Home(page), status).ServeHTTP(w, r)
}

func sessionID(r *http.Request) string {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return ""
	}
	return c.Value
}

// ensureSession returns the visitor's session id, issuing one if needed
func ensureSession(w http.ResponseWriter, r *http.Request) string {
	if id := sessionID(r); id != "" {
		return id
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
