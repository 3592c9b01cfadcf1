package timelock

import "crypto/ed25519"

// GlobalStateSize is the on-wire size of a GlobalState account, discriminator
// included.
const GlobalStateSize = 8 + 32 + 8

// GlobalState is the singleton, program-wide counter of locks ever created.
// Its address is derived from the literal seed "global_state".
type GlobalState struct {
	// Authority is the account identifier captured at initialize. It is
	// informational: no user-facing operation consults it.
	Authority ed25519.PublicKey

	// LockCounter is the number of locks ever created. It is strictly
	// non-decreasing and is incremented by exactly one on every successful
	// Lock operation.
	LockCounter uint64
}

// Clone returns a deep copy of the GlobalState, safe to hand back to a
// caller that must not be able to mutate the store's copy through it.
func (g *GlobalState) Clone() *GlobalState {
	clone := *g
	clone.Authority = append(ed25519.PublicKey(nil), g.Authority...)
	return &clone
}

// Marshal serializes the GlobalState into its fixed-size wire layout.
func (g *GlobalState) Marshal() []byte {
	data := make([]byte, GlobalStateSize)

	var offset int
	putDiscriminator(data, globalStateDiscriminator, &offset)
	putKey(data, g.Authority, &offset)
	putUint64(data, g.LockCounter, &offset)

	return data
}

// Unmarshal parses a GlobalState from its wire layout, rejecting data with
// the wrong size or discriminator.
func (g *GlobalState) Unmarshal(data []byte) error {
	if len(data) != GlobalStateSize {
		return ErrInvalidAccountData
	}

	var offset int
	var discriminator [8]byte
	getDiscriminator(data, &discriminator, &offset)
	if discriminator != globalStateDiscriminator {
		return ErrInvalidAccountData
	}

	getKey(data, &g.Authority, &offset)
	getUint64(data, &g.LockCounter, &offset)

	return nil
}

// LockSize is the on-wire size of a Lock account, discriminator included.
const LockSize = 8 + 8 + 32 + 32 + 8 + 8 + 8 + 1 + 1

// Lock is the per-position metadata record. Its address is derived from
// ("lock", id as little-endian u64).
type Lock struct {
	// Id equals the seed used to derive this account's address; immutable.
	Id uint64

	// Owner is the depositor of record; the sole principal authorized for
	// TopUp, Extend, and Unlock on this lock.
	Owner ed25519.PublicKey

	// Mint is the token type locked; must match the mint argument of any
	// later operation on this lock.
	Mint ed25519.PublicKey

	// Amount is the quantity currently held in the paired vault.
	Amount uint64

	// UnlockTimestamp is the Unix time at which Unlock becomes eligible. It
	// only ever increases after creation.
	UnlockTimestamp int64

	// CreatedAt is the Unix time captured at creation; immutable.
	CreatedAt int64

	// VaultBump is the derivation discriminator needed to reconstruct the
	// program's signing capability over the paired vault.
	VaultBump uint8

	// IsUnlocked is the terminal flag: false until a successful Unlock, then
	// permanently true.
	IsUnlocked bool
}

// Marshal serializes the Lock into its fixed-size wire layout.
func (l *Lock) Marshal() []byte {
	data := make([]byte, LockSize)

	var offset int
	putDiscriminator(data, lockDiscriminator, &offset)
	putUint64(data, l.Id, &offset)
	putKey(data, l.Owner, &offset)
	putKey(data, l.Mint, &offset)
	putUint64(data, l.Amount, &offset)
	putInt64(data, l.UnlockTimestamp, &offset)
	putInt64(data, l.CreatedAt, &offset)
	putUint8(data, l.VaultBump, &offset)
	putBool(data, l.IsUnlocked, &offset)

	return data
}

// Unmarshal parses a Lock from its wire layout, rejecting data with the
// wrong size or discriminator.
func (l *Lock) Unmarshal(data []byte) error {
	if len(data) != LockSize {
		return ErrInvalidAccountData
	}

	var offset int
	var discriminator [8]byte
	getDiscriminator(data, &discriminator, &offset)
	if discriminator != lockDiscriminator {
		return ErrInvalidAccountData
	}

	getUint64(data, &l.Id, &offset)
	getKey(data, &l.Owner, &offset)
	getKey(data, &l.Mint, &offset)
	getUint64(data, &l.Amount, &offset)
	getInt64(data, &l.UnlockTimestamp, &offset)
	getInt64(data, &l.CreatedAt, &offset)
	getUint8(data, &l.VaultBump, &offset)
	getBool(data, &l.IsUnlocked, &offset)

	return nil
}

// Clone returns a deep copy, matching the defensive-copy convention the
// program's store layer relies on so callers can't mutate cached state out
// from under a concurrent reader.
func (l *Lock) Clone() *Lock {
	clone := *l
	clone.Owner = append(ed25519.PublicKey(nil), l.Owner...)
	clone.Mint = append(ed25519.PublicKey(nil), l.Mint...)
	return &clone
}
