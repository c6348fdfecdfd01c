package contact

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"navjot.dev/internal/models"
)

var ann = models.FormState{Name: "Ann", Email: "ann@x.com", Message: "Hi"}

func TestMemoryStoreSubmitAndReset(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	store := NewMemoryStore(30 * time.Millisecond)
	defer store.Close()

	f, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, LabelSend, f.SubmitLabel())

	f, err = store.Submit(ctx, "s1", ann)
	require.NoError(t, err)
	assert.True(t, f.Submitted)
	assert.Equal(t, LabelSent, f.SubmitLabel())

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, ann, got.State)
	assert.True(t, got.Disabled())

	require.Eventually(t, func() bool {
		f, err := store.Get(ctx, "s1")
		return err == nil && !f.Submitted
	}, time.Second, 5*time.Millisecond)

	got, err = store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "", got.State.Name)
	assert.Equal(t, "", got.State.Email)
	assert.Equal(t, "", got.State.Message)
	assert.Equal(t, LabelSend, got.SubmitLabel())
}

func TestMemoryStoreRejectsResubmission(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	store := NewMemoryStore(time.Minute)
	defer store.Close()

	_, err := store.Submit(ctx, "s1", ann)
	require.NoError(t, err)

	f, err := store.Submit(ctx, "s1", models.FormState{Name: "Bob", Email: "bob@x.com", Message: "Yo"})
	require.ErrorIs(t, err, ErrSubmissionPending)
	assert.Equal(t, ann, f.State)

	// other visitors are independent
	_, err = store.Submit(ctx, "s2", ann)
	require.NoError(t, err)
	assert.Equal(t, 2, store.Pending())
}

func TestMemoryStoreCloseDropsPendingResets(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	store := NewMemoryStore(20 * time.Millisecond)

	_, err := store.Submit(ctx, "s1", ann)
	require.NoError(t, err)
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())

	time.Sleep(40 * time.Millisecond)
	assert.Zero(t, store.Pending())

	_, err = store.Get(ctx, "s1")
	require.ErrorIs(t, err, ErrStoreClosed)
	_, err = store.Submit(ctx, "s1", ann)
	require.ErrorIs(t, err, ErrStoreClosed)
}

func TestMemoryStoreResetAt(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore(3 * time.Second)
	store.now = func() time.Time { return now }
	defer store.Close()

	f, err := store.Submit(context.Background(), "s1", ann)
	require.NoError(t, err)
	assert.Equal(t, now.Add(3*time.Second), f.ResetAt)
	assert.Equal(t, 3*time.Second, f.Remaining(now))
}

func TestNewMemoryStoreDefaultsDelay(t *testing.T) {
	store := NewMemoryStore(0)
	defer store.Close()
	assert.Equal(t, DefaultResetDelay, store.delay)
}
