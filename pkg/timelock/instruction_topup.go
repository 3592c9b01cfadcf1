package timelock

import (
	"bytes"
	"crypto/ed25519"

	"github.com/trixky/Lockfun-Program/pkg/solana"
)

var topUpInstructionDiscriminator = [8]byte{78, 75, 152, 8, 127, 177, 100, 212}

const (
	TopUpInstructionArgsSize = 8 // additionalAmount

	TopUpInstructionAccountsSize = 32 + // lock
		32 + // vault
		32 + // mint
		32 + // ownerTokenAccount
		32 + // owner
		32 // tokenProgram

	TopUpInstructionSize = discriminatorSize + TopUpInstructionArgsSize + TopUpInstructionAccountsSize
)

// TopUpInstructionArgs is top_up's single argument.
type TopUpInstructionArgs struct {
	AdditionalAmount uint64
}

// TopUpInstructionAccounts names the accounts top_up reads and writes.
type TopUpInstructionAccounts struct {
	Lock              ed25519.PublicKey
	Vault             ed25519.PublicKey
	Mint              ed25519.PublicKey
	OwnerTokenAccount ed25519.PublicKey
	Owner             ed25519.PublicKey
}

// NewTopUpInstruction builds the top_up instruction.
func NewTopUpInstruction(accounts *TopUpInstructionAccounts, args *TopUpInstructionArgs) solana.Instruction {
	data := make([]byte, discriminatorSize+TopUpInstructionArgsSize)

	var offset int
	putDiscriminator(data, topUpInstructionDiscriminator, &offset)
	putUint64(data, args.AdditionalAmount, &offset)

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

// TopUpInstructionFromBinary decodes top_up's argument payload, rejecting an
// instruction not addressed to this program before inspecting its data.
func TopUpInstructionFromBinary(ix solana.Instruction) (*TopUpInstructionArgs, error) {
	if !ix.Program.Equal(ProgramID) {
		return nil, ErrInvalidProgram
	}

	data := ix.Data
	if len(data) < discriminatorSize+TopUpInstructionArgsSize {
		return nil, ErrInvalidInstructionData
	}

	var offset int
	var discriminator [8]byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator[:], topUpInstructionDiscriminator[:]) {
		return nil, ErrInvalidInstructionData
	}

	var args TopUpInstructionArgs
	getUint64(data, &args.AdditionalAmount, &offset)

	return &args, nil
}
