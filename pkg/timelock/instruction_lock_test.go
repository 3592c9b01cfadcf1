package timelock

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockInstruction_EncodeDecodeRoundTrip(t *testing.T) {
	accounts := &LockInstructionAccounts{
		GlobalState:       generateTestKey(t),
		Lock:              generateTestKey(t),
		Vault:             generateTestKey(t),
		Mint:              generateTestKey(t),
		OwnerTokenAccount: generateTestKey(t),
		Owner:             generateTestKey(t),
		FeeRecipient:      generateTestKey(t),
	}
	args := &LockInstructionArgs{
		Amount:          1_000_000,
		UnlockTimestamp: 1_893_456_000,
	}

	ix := NewLockInstruction(accounts, args)

	assert.True(t, ix.Program.Equal(ProgramID))
	require.Len(t, ix.Accounts, 9)
	assert.True(t, ix.Accounts[5].IsSigner, "owner must sign")
	assert.True(t, ix.Accounts[5].IsWritable)
	assert.False(t, ix.Accounts[3].IsWritable, "mint is read-only")
	assert.False(t, ix.Accounts[7].IsSigner, "token program is not a signer")

	decoded, err := LockInstructionFromBinary(ix)
	require.NoError(t, err)
	assert.Equal(t, args.Amount, decoded.Amount)
	assert.Equal(t, args.UnlockTimestamp, decoded.UnlockTimestamp)
}

func TestLockInstructionFromBinary_RejectsWrongProgram(t *testing.T) {
	accounts := &LockInstructionAccounts{
		GlobalState:       generateTestKey(t),
		Lock:              generateTestKey(t),
		Vault:             generateTestKey(t),
		Mint:              generateTestKey(t),
		OwnerTokenAccount: generateTestKey(t),
		Owner:             generateTestKey(t),
		FeeRecipient:      generateTestKey(t),
	}
	ix := NewLockInstruction(accounts, &LockInstructionArgs{Amount: 1, UnlockTimestamp: 1})
	ix.Program = generateTestKey(t)

	_, err := LockInstructionFromBinary(ix)
	assert.Equal(t, ErrInvalidProgram, err)
}

func TestLockInstructionFromBinary_RejectsWrongDiscriminator(t *testing.T) {
	ix := NewLockInstruction(&LockInstructionAccounts{}, &LockInstructionArgs{Amount: 1, UnlockTimestamp: 1})
	ix.Data[0] ^= 0xFF

	_, err := LockInstructionFromBinary(ix)
	assert.Equal(t, ErrInvalidInstructionData, err)
}

func TestLockInstructionFromBinary_RejectsShortData(t *testing.T) {
	ix := NewLockInstruction(&LockInstructionAccounts{}, &LockInstructionArgs{Amount: 1, UnlockTimestamp: 1})
	ix.Data = ix.Data[:discriminatorSize]

	_, err := LockInstructionFromBinary(ix)
	assert.Equal(t, ErrInvalidInstructionData, err)
}

func generateTestKey(t *testing.T) ed25519.PublicKey {
	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return pub
}
