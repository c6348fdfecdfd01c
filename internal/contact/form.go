// Package contact holds the state of the mock contact form.
//
// A submission flips a visitor's form to the submitted state; after a fixed
// delay the form resets to empty fields. Nothing is delivered anywhere.
package contact

import (
	"context"
	"errors"
	"time"

	"navjot.dev/internal/models"
)

// DefaultResetDelay is how long a submitted form stays submitted
const DefaultResetDelay = 3 * time.Second

// Labels shown by the form
const (
	LabelSend     = "Send Message"
	LabelSent     = "Message Sent! ✓"
	StatusMessage = "Thank you! I'll get back to you soon."
)

var (
	// ErrSubmissionPending is returned when a form is submitted again before it reset
	ErrSubmissionPending = errors.New("submission pending")
	// ErrStoreClosed is returned after Close
	ErrStoreClosed = errors.New("store closed")
)

// Form is a visitor's contact form
type Form struct {
	State     models.FormState `json:"state"`
	Submitted bool             `json:"submitted"`
	ResetAt   time.Time        `json:"reset_at"`
}

// SubmitLabel returns the submit button text
func (f Form) SubmitLabel() string {
	if f.Submitted {
		return LabelSent
	}
	return LabelSend
}

// Disabled reports whether further submission is blocked
func (f Form) Disabled() bool {
	return f.Submitted
}

// Remaining returns the time left until the form resets
func (f Form) Remaining(now time.Time) time.Duration {
	if !f.Submitted {
		return 0
	}
	if d := f.ResetAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Store keeps forms keyed by visitor session id
type Store interface {
	// Get returns the visitor's form; an unknown id yields an empty form
	Get(ctx context.Context, id string) (Form, error)
	// Submit records the values and starts the reset delay
	Submit(ctx context.Context, id string, state models.FormState) (Form, error)
	// Close releases the store; pending resets are dropped
	Close() error
}
