package token

import (
	"crypto/ed25519"
	"sync"

	"github.com/pkg/errors"
)

// ErrAccountNotFound is returned when a ledger lookup names an address with
// no token account.
var ErrAccountNotFound = errors.New("token account not found")

// ErrMintMismatch is returned when an operation names a mint that doesn't
// match the token account's actual mint, mirroring TransferChecked's guard
// in the real SPL token program.
var ErrMintMismatch = errors.New("mint mismatch")

// ErrInsufficientFunds is returned when a transfer's source balance is below
// the requested amount.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Account is the balance-bearing state of one token account: a mint, an
// owning wallet, and an amount. It is the in-memory stand-in for the vault
// and owner_token_account accounts the real SPL token program would own.
type Account struct {
	Mint   ed25519.PublicKey
	Owner  ed25519.PublicKey
	Amount uint64
}

// Ledger is an in-memory map of token account address to Account, standing
// in for the fungible-token subsystem out of scope per spec.md §1. It is
// exercised by program.Processor for every vault deposit and withdrawal.
type Ledger struct {
	mu       sync.Mutex
	accounts map[string]*Account
}

// NewLedger returns an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{accounts: make(map[string]*Account)}
}

// CreateAccount opens a zero-balance token account for the given mint and
// owner at address. It is used to stand up the vault at lock creation.
func (l *Ledger) CreateAccount(address, mint, owner ed25519.PublicKey) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.accounts[string(address)] = &Account{
		Mint:  append(ed25519.PublicKey(nil), mint...),
		Owner: append(ed25519.PublicKey(nil), owner...),
	}
}

// Seed sets an existing token account's balance directly; used by tests and
// local tooling to simulate a depositor's pre-funded source account.
func (l *Ledger) Seed(address, mint, owner ed25519.PublicKey, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.accounts[string(address)] = &Account{
		Mint:   append(ed25519.PublicKey(nil), mint...),
		Owner:  append(ed25519.PublicKey(nil), owner...),
		Amount: amount,
	}
}

// Balance returns the address's current balance.
func (l *Ledger) Balance(address ed25519.PublicKey) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.accounts[string(address)]
	if !ok {
		return 0, ErrAccountNotFound
	}
	return account.Amount, nil
}

// Mint returns the address's token mint.
func (l *Ledger) Mint(address ed25519.PublicKey) (ed25519.PublicKey, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.accounts[string(address)]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return account.Mint, nil
}

// TransferChecked moves amount units of mint from source to destination. It
// fails closed: either both balances move, or neither does.
func (l *Ledger) TransferChecked(source, destination, mint ed25519.PublicKey, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	src, ok := l.accounts[string(source)]
	if !ok {
		return ErrAccountNotFound
	}
	dst, ok := l.accounts[string(destination)]
	if !ok {
		return ErrAccountNotFound
	}

	if !src.Mint.Equal(mint) || !dst.Mint.Equal(mint) {
		return ErrMintMismatch
	}
	if src.Amount < amount {
		return ErrInsufficientFunds
	}

	src.Amount -= amount
	dst.Amount += amount

	return nil
}
