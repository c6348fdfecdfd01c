package contact

import (
	"context"
	"sync"
	"time"

	"navjot.dev/internal/models"
)

type memoryEntry struct {
	form  Form
	timer *time.Timer
}

// MemoryStore keeps forms in process memory, one reset timer per submission
type MemoryStore struct {
	mu     sync.Mutex
	delay  time.Duration
	now    func() time.Time
	forms  map[string]*memoryEntry
	closed bool
}

// NewMemoryStore creates a MemoryStore resetting forms after delay
func NewMemoryStore(delay time.Duration) *MemoryStore {
	if delay <= 0 {
		delay = DefaultResetDelay
	}
	return &MemoryStore{
		delay: delay,
		now:   time.Now,
		forms: make(map[string]*memoryEntry),
	}
}

// Get returns the form for id
func (s *MemoryStore) Get(_ context.Context, id string) (Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Form{}, ErrStoreClosed
	}
	if e, ok := s.forms[id]; ok {
		return e.form, nil
	}
	return Form{}, nil
}

// Submit flips the form to submitted and schedules its reset
func (s *MemoryStore) Submit(_ context.Context, id string, state models.FormState) (Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Form{}, ErrStoreClosed
	}
	if e, ok := s.forms[id]; ok {
		return e.form, ErrSubmissionPending
	}

	e := &memoryEntry{
		form: Form{
			State:     state,
			Submitted: true,
			ResetAt:   s.now().Add(s.delay),
		},
	}
	e.timer = time.AfterFunc(s.delay, func() { s.reset(id, e) })
	s.forms[id] = e

	return e.form, nil
}

// reset drops the entry unless it was already replaced or the store closed
func (s *MemoryStore) reset(id string, e *memoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.forms[id] == e {
		delete(s.forms, id)
	}
}

// Pending returns the number of forms waiting to reset
func (s *MemoryStore) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.forms)
}

// Close stops every pending reset
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	for id, e := range s.forms {
		e.timer.Stop()
		delete(s.forms, id)
	}
	return nil
}
