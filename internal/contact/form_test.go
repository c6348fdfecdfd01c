package contact

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormLabels(t *testing.T) {
	var f Form
	assert.Equal(t, LabelSend, f.SubmitLabel())
	assert.False(t, f.Disabled())

	f.Submitted = true
	assert.Equal(t, "Message Sent! ✓", f.SubmitLabel())
	assert.True(t, f.Disabled())
}

func TestFormRemaining(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	f := Form{Submitted: true, ResetAt: now.Add(2 * time.Second)}
	assert.Equal(t, 2*time.Second, f.Remaining(now))
	assert.Zero(t, f.Remaining(now.Add(5*time.Second)))
	assert.Zero(t, Form{}.Remaining(now))
}
