package timelock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendInstruction_EncodeDecodeRoundTrip(t *testing.T) {
	accounts := &ExtendInstructionAccounts{
		Lock:  generateTestKey(t),
		Owner: generateTestKey(t),
	}
	args := &ExtendInstructionArgs{NewUnlockTimestamp: 1_893_456_000}

	ix := NewExtendInstruction(accounts, args)

	assert.True(t, ix.Program.Equal(ProgramID))
	require.Len(t, ix.Accounts, 2)
	assert.True(t, ix.Accounts[1].IsSigner, "owner must sign")
	assert.False(t, ix.Accounts[1].IsWritable, "owner is not written by extend")

	decoded, err := ExtendInstructionFromBinary(ix)
	require.NoError(t, err)
	assert.Equal(t, args.NewUnlockTimestamp, decoded.NewUnlockTimestamp)
}

func TestExtendInstructionFromBinary_RejectsWrongProgram(t *testing.T) {
	ix := NewExtendInstruction(&ExtendInstructionAccounts{}, &ExtendInstructionArgs{NewUnlockTimestamp: 1})
	ix.Program = generateTestKey(t)

	_, err := ExtendInstructionFromBinary(ix)
	assert.Equal(t, ErrInvalidProgram, err)
}

func TestExtendInstructionFromBinary_RejectsWrongDiscriminator(t *testing.T) {
	ix := NewExtendInstruction(&ExtendInstructionAccounts{}, &ExtendInstructionArgs{NewUnlockTimestamp: 1})
	ix.Data[0] ^= 0xFF

	_, err := ExtendInstructionFromBinary(ix)
	assert.Equal(t, ErrInvalidInstructionData, err)
}
