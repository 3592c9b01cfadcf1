package timelock

import (
	"bytes"
	"crypto/ed25519"

	"github.com/trixky/Lockfun-Program/pkg/solana"
)

var lockInstructionDiscriminator = [8]byte{194, 203, 35, 100, 151, 55, 170, 82}

const (
	LockInstructionArgsSize = 8 + // amount
		8 // unlockTimestamp

	LockInstructionAccountsSize = 32 + // globalState
		32 + // lock
		32 + // vault
		32 + // mint
		32 + // ownerTokenAccount
		32 + // owner
		32 + // feeRecipient
		32 + // tokenProgram
		32 // systemProgram

	LockInstructionSize = discriminatorSize + LockInstructionArgsSize + LockInstructionAccountsSize
)

// LockInstructionArgs are lock's two arguments.
type LockInstructionArgs struct {
	Amount          uint64
	UnlockTimestamp int64
}

// LockInstructionAccounts names the accounts lock reads and writes.
type LockInstructionAccounts struct {
	GlobalState       ed25519.PublicKey
	Lock              ed25519.PublicKey
	Vault             ed25519.PublicKey
	Mint              ed25519.PublicKey
	OwnerTokenAccount ed25519.PublicKey
	Owner             ed25519.PublicKey
	FeeRecipient      ed25519.PublicKey
}

// NewLockInstruction builds the lock instruction.
func NewLockInstruction(accounts *LockInstructionAccounts, args *LockInstructionArgs) solana.Instruction {
	data := make([]byte, discriminatorSize+LockInstructionArgsSize)

	var offset int
	putDiscriminator(data, lockInstructionDiscriminator, &offset)
	putUint64(data, args.Amount, &offset)
	putInt64(data, args.UnlockTimestamp, &offset)

	return solana.NewInstruction(
		ProgramID,
		data,
		solana.NewAccountMeta(accounts.GlobalState, false),
		solana.NewAccountMeta(accounts.Lock, false),
		solana.NewAccountMeta(accounts.Vault, false),
		solana.NewReadonlyAccountMeta(accounts.Mint, false),
		solana.NewAccountMeta(accounts.OwnerTokenAccount, false),
		solana.NewAccountMeta(accounts.Owner, true),
		solana.NewAccountMeta(accounts.FeeRecipient, false),
		solana.NewReadonlyAccountMeta(TokenProgramID, false),
		solana.NewReadonlyAccountMeta(SystemProgramID, false),
	)
}

// LockInstructionFromBinary decodes lock's argument payload, rejecting an
// instruction not addressed to this program before inspecting its data.
func LockInstructionFromBinary(ix solana.Instruction) (*LockInstructionArgs, error) {
	if !ix.Program.Equal(ProgramID) {
		return nil, ErrInvalidProgram
	}

	data := ix.Data
	if len(data) < discriminatorSize+LockInstructionArgsSize {
		return nil, ErrInvalidInstructionData
	}

	var offset int
	var discriminator [8]byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator[:], lockInstructionDiscriminator[:]) {
		return nil, ErrInvalidInstructionData
	}

	var args LockInstructionArgs
	getUint64(data, &args.Amount, &offset)
	getInt64(data, &args.UnlockTimestamp, &offset)

	return &args, nil
}
