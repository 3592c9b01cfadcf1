// Package program implements the five on-chain operations against a
// store.Store and the token/system ledgers standing in for the host
// runtime's account and balance state. It is the program's state machine:
// every precondition and effect spec.md assigns to an instruction lives here,
// grouped the way the teacher's pkg/code/server handlers group request
// validation ahead of a single state mutation.
package program

import (
	"context"
	"crypto/ed25519"
	"math/bits"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/trixky/Lockfun-Program/pkg/solana/system"
	"github.com/trixky/Lockfun-Program/pkg/solana/token"
	"github.com/trixky/Lockfun-Program/pkg/timelock"
	"github.com/trixky/Lockfun-Program/pkg/timelock/store"
)

// errAmountOverflow is fatal: it means a top-up's addition would wrap a
// uint64 rather than fail, which would let the new, wrapped total read as a
// smaller balance than the vault actually holds.
var errAmountOverflow = errors.New("amount overflows u64")

// Processor executes the program's five operations. It holds no per-request
// state: every method re-reads every account it needs through store and the
// ledgers, and writes back only on success.
type Processor struct {
	log *logrus.Entry

	store        store.Store
	tokenLedger  *token.Ledger
	systemLedger *system.Ledger
	clock        timelock.Clock
}

// NewProcessor returns a Processor wired to the given account store, token
// and native-currency ledgers, and clock. The creation fee amount and
// recipient are not parameters: they are the program's compiled-in
// constants, timelock.FeeLamports and timelock.FeeRecipient.
func NewProcessor(
	accounts store.Store,
	tokenLedger *token.Ledger,
	systemLedger *system.Ledger,
	clock timelock.Clock,
) *Processor {
	return &Processor{
		log:          logrus.StandardLogger().WithField("type", "program/processor"),
		store:        accounts,
		tokenLedger:  tokenLedger,
		systemLedger: systemLedger,
		clock:        clock,
	}
}

// InitializeRequest creates the program's singleton GlobalState.
type InitializeRequest struct {
	Authority ed25519.PublicKey
}

// Initialize creates the GlobalState account, rejecting a second call.
func (p *Processor) Initialize(ctx context.Context, req *InitializeRequest) error {
	log := p.log.WithField("method", "Initialize")

	err := p.store.CreateGlobalState(ctx, &timelock.GlobalState{
		Authority:   req.Authority,
		LockCounter: 0,
	})
	if err != nil {
		log.WithError(err).Info("failed to create global state")
		return err
	}

	return nil
}

// LockRequest opens a new time-locked position.
type LockRequest struct {
	Owner             ed25519.PublicKey
	Mint              ed25519.PublicKey
	OwnerTokenAccount ed25519.PublicKey
	Vault             ed25519.PublicKey
	FeeRecipient      ed25519.PublicKey
	Amount            uint64
	UnlockTimestamp   int64
}

// LockResult reports the newly created lock's id.
type LockResult struct {
	Id uint64
}

// Lock deposits Amount from OwnerTokenAccount into the derived vault,
// charges the one-time creation fee, and creates the paired Lock account.
func (p *Processor) Lock(ctx context.Context, req *LockRequest) (*LockResult, error) {
	log := p.log.WithField("method", "Lock")

	if req.Amount == 0 {
		return nil, timelock.ErrAmountZero
	}
	if req.UnlockTimestamp <= p.clock.Now().Unix() {
		return nil, timelock.ErrTimestampInPast
	}

	if !req.FeeRecipient.Equal(timelock.FeeRecipient()) {
		return nil, timelock.ErrInvalidFeeRecipient
	}

	global, err := p.store.GetGlobalState(ctx)
	if err != nil {
		log.WithError(err).Info("failed to load global state")
		return nil, err
	}

	id := global.LockCounter

	if _, _, err := timelock.LockAddress(id); err != nil {
		return nil, errors.Wrap(err, "deriving lock address")
	}
	vaultAddress, vaultBump, err := timelock.VaultAddress(id)
	if err != nil {
		return nil, errors.Wrap(err, "deriving vault address")
	}
	if !req.Vault.Equal(vaultAddress) {
		return nil, timelock.ErrUnauthorized
	}

	// The arguments, the fee recipient and every derivation are validated
	// before any ledger mutation; the source token balance and the owner's
	// fee balance are only checked by the transfers themselves, after the
	// vault account has been created. Fund the vault first, then charge the
	// fee, matching the
	// original program's ordering (lib.rs's lock handler transfers the
	// principal before the fee). Reverting a mutation already committed to
	// one ledger if the next one fails is not modeled here: the real
	// transaction's all-or-nothing commit, which this code stands in for, is
	// what makes the pair atomic in production.
	p.tokenLedger.CreateAccount(vaultAddress, req.Mint, vaultAddress)
	if err := p.tokenLedger.TransferChecked(req.OwnerTokenAccount, vaultAddress, req.Mint, req.Amount); err != nil {
		log.WithError(err).Info("failed to fund vault")
		return nil, err
	}

	if err := p.systemLedger.Transfer(req.Owner, timelock.FeeRecipient(), timelock.FeeLamports); err != nil {
		log.WithError(err).Info("failed to charge creation fee")
		return nil, err
	}

	now := p.clock.Now().Unix()
	lock := &timelock.Lock{
		Id:              id,
		Owner:           req.Owner,
		Mint:            req.Mint,
		Amount:          req.Amount,
		UnlockTimestamp: req.UnlockTimestamp,
		CreatedAt:       now,
		VaultBump:       vaultBump,
		IsUnlocked:      false,
	}
	if err := p.store.CreateLock(ctx, lock); err != nil {
		log.WithError(err).Info("failed to create lock")
		return nil, err
	}

	global.LockCounter++
	if err := p.store.SaveGlobalState(ctx, global); err != nil {
		log.WithError(err).Info("failed to persist global state")
		return nil, err
	}

	log.WithField("lock_id", id).Debug("lock created")
	return &LockResult{Id: id}, nil
}

// TopUpRequest adds additional funds to an existing lock.
type TopUpRequest struct {
	Id                uint64
	Owner             ed25519.PublicKey
	Mint              ed25519.PublicKey
	OwnerTokenAccount ed25519.PublicKey
	Vault             ed25519.PublicKey
	AdditionalAmount  uint64
}

// TopUp deposits AdditionalAmount from OwnerTokenAccount into the lock's
// vault, increasing its recorded Amount.
func (p *Processor) TopUp(ctx context.Context, req *TopUpRequest) error {
	log := p.log.WithField("method", "TopUp").WithField("lock_id", req.Id)

	if req.Vault.Equal(req.OwnerTokenAccount) {
		return timelock.ErrDuplicateAccounts
	}
	if req.AdditionalAmount == 0 {
		return timelock.ErrAmountZero
	}

	lock, err := p.store.GetLock(ctx, req.Id)
	if err != nil {
		log.WithError(err).Info("failed to load lock")
		return err
	}
	if !keysEqual(lock.Owner, req.Owner) {
		return timelock.ErrUnauthorized
	}
	if lock.IsUnlocked {
		return timelock.ErrAlreadyUnlocked
	}
	if !keysEqual(lock.Mint, req.Mint) {
		return timelock.ErrInvalidMint
	}

	vaultAddress, _, err := timelock.VaultAddress(req.Id)
	if err != nil {
		return errors.Wrap(err, "deriving vault address")
	}
	if !req.Vault.Equal(vaultAddress) {
		return timelock.ErrUnauthorized
	}

	sum, carry := bits.Add64(lock.Amount, req.AdditionalAmount, 0)
	if carry != 0 {
		log.WithField("amount", lock.Amount).WithField("additional_amount", req.AdditionalAmount).Error("top-up amount overflow")
		return errAmountOverflow
	}

	if err := p.tokenLedger.TransferChecked(req.OwnerTokenAccount, vaultAddress, req.Mint, req.AdditionalAmount); err != nil {
		log.WithError(err).Info("failed to fund vault")
		return err
	}

	lock.Amount = sum

	if err := p.store.SaveLock(ctx, lock); err != nil {
		log.WithError(err).Info("failed to persist lock")
		return err
	}

	return nil
}

// ExtendRequest pushes a lock's unlock deadline further into the future.
type ExtendRequest struct {
	Id                 uint64
	Owner              ed25519.PublicKey
	NewUnlockTimestamp int64
}

// Extend sets the lock's UnlockTimestamp to NewUnlockTimestamp. It only
// compares against the lock's current stored deadline, never against wall
// clock time: a lock already eligible for Unlock can still be extended.
func (p *Processor) Extend(ctx context.Context, req *ExtendRequest) error {
	log := p.log.WithField("method", "Extend").WithField("lock_id", req.Id)

	lock, err := p.store.GetLock(ctx, req.Id)
	if err != nil {
		log.WithError(err).Info("failed to load lock")
		return err
	}
	if !keysEqual(lock.Owner, req.Owner) {
		return timelock.ErrUnauthorized
	}
	if lock.IsUnlocked {
		return timelock.ErrAlreadyUnlocked
	}
	if req.NewUnlockTimestamp <= lock.UnlockTimestamp {
		return timelock.ErrCannotShortenTimestamp
	}

	lock.UnlockTimestamp = req.NewUnlockTimestamp
	if err := p.store.SaveLock(ctx, lock); err != nil {
		log.WithError(err).Info("failed to persist lock")
		return err
	}

	return nil
}

// UnlockRequest withdraws a lock's full balance back to the owner.
type UnlockRequest struct {
	Id                uint64
	Owner             ed25519.PublicKey
	Mint              ed25519.PublicKey
	OwnerTokenAccount ed25519.PublicKey
	Vault             ed25519.PublicKey
}

// Unlock withdraws the vault's full balance to OwnerTokenAccount and marks
// the lock permanently unlocked. It is a one-time, terminal transition.
func (p *Processor) Unlock(ctx context.Context, req *UnlockRequest) error {
	log := p.log.WithField("method", "Unlock").WithField("lock_id", req.Id)

	if req.Vault.Equal(req.OwnerTokenAccount) {
		return timelock.ErrDuplicateAccounts
	}

	lock, err := p.store.GetLock(ctx, req.Id)
	if err != nil {
		log.WithError(err).Info("failed to load lock")
		return err
	}
	if !keysEqual(lock.Owner, req.Owner) {
		return timelock.ErrUnauthorized
	}
	if lock.IsUnlocked {
		return timelock.ErrAlreadyUnlocked
	}
	if !keysEqual(lock.Mint, req.Mint) {
		return timelock.ErrInvalidMint
	}
	if p.clock.Now().Unix() < lock.UnlockTimestamp {
		return timelock.ErrTooEarly
	}

	vaultAddress, _, err := timelock.VaultAddress(req.Id)
	if err != nil {
		return errors.Wrap(err, "deriving vault address")
	}
	if !req.Vault.Equal(vaultAddress) {
		return timelock.ErrUnauthorized
	}

	if err := p.tokenLedger.TransferChecked(vaultAddress, req.OwnerTokenAccount, req.Mint, lock.Amount); err != nil {
		log.WithError(err).Info("failed to withdraw vault")
		return err
	}

	lock.Amount = 0
	lock.IsUnlocked = true
	if err := p.store.SaveLock(ctx, lock); err != nil {
		log.WithError(err).Info("failed to persist lock")
		return err
	}

	return nil
}

func keysEqual(a, b ed25519.PublicKey) bool {
	return a.Equal(b)
}
