package timelock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeInstruction_EncodeDecodeRoundTrip(t *testing.T) {
	accounts := &InitializeInstructionAccounts{
		GlobalState:   generateTestKey(t),
		Authority:     generateTestKey(t),
		SystemProgram: SystemProgramID,
	}

	ix := NewInitializeInstruction(accounts)

	assert.True(t, ix.Program.Equal(ProgramID))
	require.Len(t, ix.Accounts, 3)
	assert.True(t, ix.Accounts[1].IsSigner, "authority must sign")

	require.NoError(t, InitializeInstructionFromBinary(ix))
}

func TestInitializeInstructionFromBinary_RejectsWrongProgram(t *testing.T) {
	ix := NewInitializeInstruction(&InitializeInstructionAccounts{})
	ix.Program = generateTestKey(t)

	assert.Equal(t, ErrInvalidProgram, InitializeInstructionFromBinary(ix))
}

func TestInitializeInstructionFromBinary_RejectsWrongDiscriminator(t *testing.T) {
	ix := NewInitializeInstruction(&InitializeInstructionAccounts{})
	ix.Data[0] ^= 0xFF

	assert.Equal(t, ErrInvalidInstructionData, InitializeInstructionFromBinary(ix))
}
