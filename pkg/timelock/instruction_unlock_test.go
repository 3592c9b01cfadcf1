package timelock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlockInstruction_EncodeDecodeRoundTrip(t *testing.T) {
	accounts := &UnlockInstructionAccounts{
		Lock:              generateTestKey(t),
		Vault:             generateTestKey(t),
		Mint:              generateTestKey(t),
		OwnerTokenAccount: generateTestKey(t),
		Owner:             generateTestKey(t),
	}

	ix := NewUnlockInstruction(accounts)

	assert.True(t, ix.Program.Equal(ProgramID))
	require.Len(t, ix.Accounts, 6)
	assert.True(t, ix.Accounts[4].IsSigner, "owner must sign")

	require.NoError(t, UnlockInstructionFromBinary(ix))
}

func TestUnlockInstructionFromBinary_RejectsWrongProgram(t *testing.T) {
	ix := NewUnlockInstruction(&UnlockInstructionAccounts{})
	ix.Program = generateTestKey(t)

	assert.Equal(t, ErrInvalidProgram, UnlockInstructionFromBinary(ix))
}

func TestUnlockInstructionFromBinary_RejectsWrongDiscriminator(t *testing.T) {
	ix := NewUnlockInstruction(&UnlockInstructionAccounts{})
	ix.Data[0] ^= 0xFF

	assert.Equal(t, ErrInvalidInstructionData, UnlockInstructionFromBinary(ix))
}

func TestUnlockInstructionFromBinary_RejectsWrongSize(t *testing.T) {
	ix := NewUnlockInstruction(&UnlockInstructionAccounts{})
	ix.Data = append(ix.Data, 0)

	assert.Equal(t, ErrInvalidInstructionData, UnlockInstructionFromBinary(ix))
}
