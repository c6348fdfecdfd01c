package contact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"navjot.dev/internal/models"
)

// DefaultRedisPrefix namespaces form keys
const DefaultRedisPrefix = "portfolio:contact:"

// RedisStore keeps forms in Redis; the reset is the key's expiry
type RedisStore struct {
	client *redis.Client
	prefix string
	delay  time.Duration
	now    func() time.Time
}

// NewRedisStore wraps a client. The store owns the client and closes it.
func NewRedisStore(client *redis.Client, prefix string, delay time.Duration) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	if delay <= 0 {
		delay = DefaultResetDelay
	}
	return &RedisStore{
		client: client,
		prefix: prefix,
		delay:  delay,
		now:    time.Now,
	}
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}

// Get returns the form for id
func (s *RedisStore) Get(ctx context.Context, id string) (Form, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Form{}, nil
	}
	if err != nil {
		return Form{}, fmt.Errorf("failed to read form: %w", err)
	}

	var f Form
	if err := json.Unmarshal(data, &f); err != nil {
		return Form{}, fmt.Errorf("failed to decode form: %w", err)
	}
	return f, nil
}

// Submit stores the submitted form with an expiry of the reset delay
func (s *RedisStore) Submit(ctx context.Context, id string, state models.FormState) (Form, error) {
	f := Form{
		State:     state,
		Submitted: true,
		ResetAt:   s.now().Add(s.delay),
	}
	data, err := json.Marshal(f)
	if err != nil {
		return Form{}, fmt.Errorf("failed to encode form: %w", err)
	}

	ok, err := s.client.SetNX(ctx, s.key(id), data, s.delay).Result()
	if err != nil {
		return Form{}, fmt.Errorf("failed to store form: %w", err)
	}
	if !ok {
		pending, err := s.Get(ctx, id)
		if err != nil {
			return Form{}, err
		}
		return pending, ErrSubmissionPending
	}
	return f, nil
}

// Ping checks the connection
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the client
func (s *RedisStore) Close() error {
	return s.client.Close()
}
