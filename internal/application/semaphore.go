package application

import "context"

// semaphore is a context-aware counting semaphore bounding in-flight
// fetches against the upstream data source.
type semaphore struct {
	slots chan struct{}
}

func newSemaphore(limit int) *semaphore {
	if limit < 1 {
		limit = 1
	}

	return &semaphore{slots: make(chan struct{}, limit)}
}

func (s *semaphore) Acquire(ctx context.Context) error {
	select {
	case s.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *semaphore) Release() {
	<-s.slots
}
