package timelock

import (
	"bytes"
	"crypto/ed25519"

	"github.com/trixky/Lockfun-Program/pkg/solana"
)

var initializeInstructionDiscriminator = [8]byte{175, 175, 109, 31, 13, 152, 155, 237}

const (
	InitializeInstructionAccountsSize = 32 + // globalState
		32 + // authority
		32 // systemProgram

	InitializeInstructionSize = discriminatorSize + InitializeInstructionAccountsSize
)

// InitializeInstructionAccounts names the accounts the initialize operation
// reads and writes.
type InitializeInstructionAccounts struct {
	GlobalState   ed25519.PublicKey
	Authority     ed25519.PublicKey
	SystemProgram ed25519.PublicKey
}

// NewInitializeInstruction builds the initialize instruction. It takes no
// arguments: the only effect is creating GlobalState with lock_counter = 0
// and authority = the supplied signer.
func NewInitializeInstruction(accounts *InitializeInstructionAccounts) solana.Instruction {
	data := make([]byte, discriminatorSize)
	var offset int
	putDiscriminator(data, initializeInstructionDiscriminator, &offset)

	return solana.NewInstruction(
		ProgramID,
		data,
		solana.NewAccountMeta(accounts.GlobalState, false),
		solana.NewAccountMeta(accounts.Authority, true),
		solana.NewReadonlyAccountMeta(accounts.SystemProgram, false),
	)
}

// InitializeInstructionFromBinary decodes an initialize instruction's
// argument-less data payload and verifies its program id and discriminator.
func InitializeInstructionFromBinary(ix solana.Instruction) error {
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
	if !bytes.Equal(discriminator[:], initializeInstructionDiscriminator[:]) {
		return ErrInvalidInstructionData
	}

	return nil
}
