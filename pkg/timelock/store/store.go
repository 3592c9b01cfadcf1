// Package store defines the account-loading abstraction the processor uses
// in place of the host runtime's account loader, and the errors that stand
// in for the runtime's "account already in use" / "account not found"
// signals.
package store

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trixky/Lockfun-Program/pkg/timelock"
)

var (
	// ErrGlobalStateNotFound mirrors the runtime rejecting an operation that
	// reads GlobalState before initialize has run.
	ErrGlobalStateNotFound = errors.New("global state not found")

	// ErrGlobalStateAlreadyExists is initialize's "account already in use"
	// signal: re-initialization is forbidden.
	ErrGlobalStateAlreadyExists = errors.New("global state already initialized")

	// ErrLockNotFound mirrors the runtime rejecting an operation against a
	// lock address with no backing account.
	ErrLockNotFound = errors.New("lock not found")
)

// Store holds the program's two account kinds. It stands in for the host
// runtime's account loader: every Processor method re-reads every account it
// touches through this interface and never caches state across operations.
type Store interface {
	// CreateGlobalState creates the singleton GlobalState account. It
	// returns ErrGlobalStateAlreadyExists if one already exists.
	CreateGlobalState(ctx context.Context, state *timelock.GlobalState) error

	// GetGlobalState returns the current GlobalState, or
	// ErrGlobalStateNotFound if initialize has never run.
	GetGlobalState(ctx context.Context) (*timelock.GlobalState, error)

	// SaveGlobalState persists a GlobalState previously returned by
	// GetGlobalState.
	SaveGlobalState(ctx context.Context, state *timelock.GlobalState) error

	// CreateLock creates a new Lock account. The id must not already be in
	// use; CreateLock does not itself enforce monotonicity against
	// GlobalState.LockCounter, since that invariant belongs to the caller
	// holding both accounts.
	CreateLock(ctx context.Context, lock *timelock.Lock) error

	// GetLock returns the Lock with the given id, or ErrLockNotFound.
	GetLock(ctx context.Context, id uint64) (*timelock.Lock, error)

	// SaveLock persists a Lock previously returned by GetLock.
	SaveLock(ctx context.Context, lock *timelock.Lock) error
}
