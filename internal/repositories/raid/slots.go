package raid

import (
	"context"
	"sync"

	"github.com/KirkDiggler/raidbot/internal/models"
)

// slot is a one-token semaphore shared by everyone waiting on a handle
type slot struct {
	token   chan struct{}
	waiters int
}

// slots hands out one mutation slot per handle. Entries are dropped once
// nobody holds or waits for them.
type slots struct {
	mu    sync.Mutex
	table map[models.Handle]*slot
}

func newSlots() *slots {
	return &slots{
		table: make(map[models.Handle]*slot),
	}
}

// acquire blocks until the handle's slot is free or ctx is done. The
// returned function must be called exactly once to release the slot.
func (s *slots) acquire(ctx context.Context, handle models.Handle) (func(), error) {
	s.mu.Lock()
	sl, ok := s.table[handle]
	if !ok {
		sl = &slot{token: make(chan struct{}, 1)}
		s.table[handle] = sl
	}
	sl.waiters++
	s.mu.Unlock()

	select {
	case sl.token <- struct{}{}:
		return func() {
			<-sl.token
			s.done(handle, sl)
		}, nil
	case <-ctx.Done():
		s.done(handle, sl)
		return nil, ctx.Err()
	}
}

func (s *slots) done(handle models.Handle, sl *slot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl.waiters--
	if sl.waiters == 0 {
		delete(s.table, handle)
	}
}

// held returns the number of handles with a holder or waiter
func (s *slots) held() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.table)
}
