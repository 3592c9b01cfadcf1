package system

import (
	"crypto/ed25519"
	"sync"

	"github.com/pkg/errors"
)

// ErrInsufficientFunds is returned when a transfer's source balance is below
// the requested amount.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Ledger is an in-memory map of address to native-currency balance, standing
// in for the host runtime's account balances. It is exercised by
// program.Processor for the one-time creation fee.
type Ledger struct {
	mu       sync.Mutex
	balances map[string]uint64
}

// NewLedger returns an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{balances: make(map[string]uint64)}
}

// Seed sets an address's balance directly; used by tests and local tooling
// to simulate a funded signer.
func (l *Ledger) Seed(address ed25519.PublicKey, lamports uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[string(address)] = lamports
}

// Balance returns address's current balance.
func (l *Ledger) Balance(address ed25519.PublicKey) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[string(address)]
}

// Transfer moves lamports from from to to. It fails closed: either both
// balances move, or neither does.
func (l *Ledger) Transfer(from, to ed25519.PublicKey, lamports uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.balances[string(from)] < lamports {
		return ErrInsufficientFunds
	}

	l.balances[string(from)] -= lamports
	l.balances[string(to)] += lamports

	return nil
}
