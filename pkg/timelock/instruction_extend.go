package timelock

import (
	"bytes"
	"crypto/ed25519"

	"github.com/trixky/Lockfun-Program/pkg/solana"
)

var extendInstructionDiscriminator = [8]byte{145, 68, 200, 51, 33, 9, 240, 19}

const (
	ExtendInstructionArgsSize = 8 // newUnlockTimestamp

	ExtendInstructionAccountsSize = 32 + // lock
		32 // owner

	ExtendInstructionSize = discriminatorSize + ExtendInstructionArgsSize + ExtendInstructionAccountsSize
)

// ExtendInstructionArgs is extend's single argument.
type ExtendInstructionArgs struct {
	NewUnlockTimestamp int64
}

// ExtendInstructionAccounts names the accounts extend reads and writes.
type ExtendInstructionAccounts struct {
	Lock  ed25519.PublicKey
	Owner ed25519.PublicKey
}

// NewExtendInstruction builds the extend instruction.
func NewExtendInstruction(accounts *ExtendInstructionAccounts, args *ExtendInstructionArgs) solana.Instruction {
	data := make([]byte, discriminatorSize+ExtendInstructionArgsSize)

	var offset int
	putDiscriminator(data, extendInstructionDiscriminator, &offset)
	putInt64(data, args.NewUnlockTimestamp, &offset)

	return solana.NewInstruction(
		ProgramID,
		data,
		solana.NewAccountMeta(accounts.Lock, false),
		solana.NewReadonlyAccountMeta(accounts.Owner, true),
	)
}

// ExtendInstructionFromBinary decodes extend's argument payload, rejecting an
// instruction not addressed to this program before inspecting its data.
func ExtendInstructionFromBinary(ix solana.Instruction) (*ExtendInstructionArgs, error) {
	if !ix.Program.Equal(ProgramID) {
		return nil, ErrInvalidProgram
	}

	data := ix.Data
	if len(data) < discriminatorSize+ExtendInstructionArgsSize {
		return nil, ErrInvalidInstructionData
	}

	var offset int
	var discriminator [8]byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator[:], extendInstructionDiscriminator[:]) {
		return nil, ErrInvalidInstructionData
	}

	var args ExtendInstructionArgs
	getInt64(data, &args.NewUnlockTimestamp, &offset)

	return &args, nil
}
