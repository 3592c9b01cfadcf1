package timelock

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/trixky/Lockfun-Program/pkg/solana"
)

// GlobalStateAddress derives the single, program-wide GlobalState address.
func GlobalStateAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(ProgramID, globalStateSeed)
}

// LockAddress derives the Lock address for a given lock id.
func LockAddress(id uint64) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(ProgramID, lockSeed, idSeed(id))
}

// VaultAddress derives the custody Vault address for a given lock id. The
// paired Lock stores the resulting bump in VaultBump; the processor's later
// operations do not read it and call VaultAddress again instead.
func VaultAddress(id uint64) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(ProgramID, vaultSeed, idSeed(id))
}

func idSeed(id uint64) []byte {
	seed := make([]byte, 8)
	binary.LittleEndian.PutUint64(seed, id)
	return seed
}
