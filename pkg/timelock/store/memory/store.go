// Package memory is an in-memory store.Store, grounded on the teacher's
// pkg/code/data/timelock/memory store: a mutex-guarded map returning cloned
// copies so callers can never mutate state out from under the store.
package memory

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/trixky/Lockfun-Program/pkg/timelock"
	"github.com/trixky/Lockfun-Program/pkg/timelock/store"
)

// errAlreadyExists guards CreateLock against id reuse. It should be
// unreachable in practice since lock ids are minted from
// GlobalState.LockCounter, which only ever increases.
var errAlreadyExists = errors.New("lock id already in use")

type memoryStore struct {
	mu     sync.Mutex
	global *timelock.GlobalState
	locks  map[uint64]*timelock.Lock
}

// New returns an empty store.Store backed by process memory.
func New() store.Store {
	return &memoryStore{
		locks: make(map[uint64]*timelock.Lock),
	}
}

func (s *memoryStore) CreateGlobalState(_ context.Context, state *timelock.GlobalState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.global != nil {
		return store.ErrGlobalStateAlreadyExists
	}

	s.global = state.Clone()
	return nil
}

func (s *memoryStore) GetGlobalState(_ context.Context) (*timelock.GlobalState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.global == nil {
		return nil, store.ErrGlobalStateNotFound
	}

	return s.global.Clone(), nil
}

func (s *memoryStore) SaveGlobalState(_ context.Context, state *timelock.GlobalState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.global == nil {
		return store.ErrGlobalStateNotFound
	}

	s.global = state.Clone()
	return nil
}

func (s *memoryStore) CreateLock(_ context.Context, lock *timelock.Lock) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.locks[lock.Id]; ok {
		return errAlreadyExists
	}

	s.locks[lock.Id] = lock.Clone()
	return nil
}

func (s *memoryStore) GetLock(_ context.Context, id uint64) (*timelock.Lock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[id]
	if !ok {
		return nil, store.ErrLockNotFound
	}

	return lock.Clone(), nil
}

func (s *memoryStore) SaveLock(_ context.Context, lock *timelock.Lock) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.locks[lock.Id]; !ok {
		return store.ErrLockNotFound
	}

	s.locks[lock.Id] = lock.Clone()
	return nil
}
