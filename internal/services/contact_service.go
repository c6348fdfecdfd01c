package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"navjot.dev/internal/contact"
	"navjot.dev/internal/models"
)

// ErrMissingField is returned when a required form field is blank
var ErrMissingField = errors.New("missing required field")

// ContactService simulates sending the contact form. Submissions are
// logged and held until the form resets; nothing leaves the process.
type ContactService struct {
	store  contact.Store
	logger *zap.Logger
	policy *bluemonday.Policy
}

// NewContactService creates a new ContactService
func NewContactService(store contact.Store, logger *zap.Logger) *ContactService {
	return &ContactService{
		store:  store,
		logger: logger,
		policy: bluemonday.StrictPolicy(),
	}
}

// Form returns the visitor's current form
func (s *ContactService) Form(ctx context.Context, sessionID string) (contact.Form, error) {
	if sessionID == "" {
		return contact.Form{}, nil
	}
	return s.store.Get(ctx, sessionID)
}

// Submit records a submission for the visitor
func (s *ContactService) Submit(ctx context.Context, sessionID string, state models.FormState) (contact.Form, error) {
	state = models.FormState{
		Name:    strings.TrimSpace(state.Name),
		Email:   strings.TrimSpace(state.Email),
		Message: strings.TrimSpace(state.Message),
	}
	if err := requireFields(state); err != nil {
		return contact.Form{State: state}, err
	}

	form, err := s.store.Submit(ctx, sessionID, state)
	if err != nil {
		if errors.Is(err, contact.ErrSubmissionPending) {
			s.logger.Debug("Submission ignored, form pending reset", zap.String("session", sessionID))
		}
		return form, err
	}

	s.logger.Info("Form submitted",
		zap.String("submission_id", uuid.NewString()),
		zap.String("name", s.policy.Sanitize(state.Name)),
		zap.String("email", s.policy.Sanitize(state.Email)),
		zap.String("message", s.policy.Sanitize(state.Message)),
		zap.Time("reset_at", form.ResetAt),
	)
	return form, nil
}

func requireFields(state models.FormState) error {
	var missing []string
	if state.Name == "" {
		missing = append(missing, "name")
	}
	if state.Email == "" {
		missing = append(missing, "email")
	}
	if state.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}
