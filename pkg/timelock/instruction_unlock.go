package timelock

import (
	"bytes"
	"crypto/ed25519"

	"github.com/trixky/Lockfun-Program/pkg/solana"
)

var unlockInstructionDiscriminator = [8]byte{225, 88, 91, 108, 63, 127, 2, 14}

const (
	UnlockInstructionAccountsSize = 32 + // lock
		32 + // vault
		32 + // mint
		32 + // ownerTokenAccount
		32 + // owner
		32 // tokenProgram

	UnlockInstructionSize = discriminatorSize + UnlockInstructionAccountsSize
)

// UnlockInstructionAccounts names the accounts unlock reads and writes.
type UnlockInstructionAccounts struct {
	Lock              ed25519.PublicKey
	Vault             ed25519.PublicKey
	Mint              ed25519.PublicKey
	OwnerTokenAccount ed25519.PublicKey
	Owner             ed25519.PublicKey
}

// NewUnlockInstruction builds the unlock instruction. It takes no arguments:
// the program always drains the vault's full balance.
func NewUnlockInstruction(accounts *UnlockInstructionAccounts) solana.Instruction {
	data := make([]byte, discriminatorSize)
	var offset int
	putDiscriminator(data, unlockInstructionDiscriminator, &offset)

	return solana.NewInstruction(
		ProgramID,
		data,
		solana.NewAccountMeta(accounts.Lock, false),
		solana.NewAccountMeta(accounts.Vault, false),
		solana.NewReadonlyAccountMeta(accounts.Mint, false),
		solana.NewAccountMeta(accounts.OwnerTokenAccount, false),
		solana.NewAccountMeta(accounts.Owner, true),
		solana.NewReadonlyAccountMeta(TokenProgramID, false),
	)
}

// UnlockInstructionFromBinary verifies an unlock instruction's program id
// and discriminator.
func UnlockInstructionFromBinary(ix solana.Instruction) error {
	if !ix.Program.Equal(ProgramID) {
		return ErrInvalidProgram
	}

	data := ix.Data
	if len(data) != discriminatorSize {
		return ErrInvalidInstructionData
	}

	var offset int
	var discriminator [8]byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator[:], unlockInstructionDiscriminator[:]) {
		return ErrInvalidInstructionData
	}

	return nil
}
