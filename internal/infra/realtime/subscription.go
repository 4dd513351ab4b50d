package realtime

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// subscription is the Subscription handle shared by every provider. The
// receive loop owns it and calls finish exactly once when it exits.
type subscription struct {
	id     string
	cancel context.CancelFunc
	done   chan struct{}

	mu     sync.Mutex
	err    error
	closed bool
	once   sync.Once
}

func newSubscription(cancel context.CancelFunc) *subscription {
	return &subscription{
		id:     uuid.NewString(),
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

func (s *subscription) ID() string {
	return s.id
}

func (s *subscription) Done() <-chan struct{} {
	return s.done
}

func (s *subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// Close cancels the receive loop without waiting for it, so it is safe to call
// from inside a delivery callback.
func (s *subscription) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.cancel()

	return nil
}

// finish records the terminal error unless the subscription was closed on
// purpose, then closes Done.
func (s *subscription) finish(err error) {
	s.once.Do(func() {
		s.mu.Lock()
		if !s.closed {
			s.err = err
		}
		s.mu.Unlock()

		s.cancel()
		close(s.done)
	})
}
