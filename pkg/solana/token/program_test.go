package token

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferChecked_EncodesCommandAndAmount(t *testing.T) {
	source := []byte("source-account-address-32-bytes")
	mint := []byte("mint-account-address-32-bytes!!")
	dest := []byte("dest-account-address-32-bytes!!")
	owner := []byte("owner-account-address-32-bytes!")

	instruction := TransferChecked(source, mint, dest, owner, 1_000)

	assert.Equal(t, ProgramID, []byte(instruction.Program))
	require.Len(t, instruction.Data, 9)
	assert.Equal(t, byte(CommandTransferChecked), instruction.Data[0])
	assert.Equal(t, uint64(1_000), binary.LittleEndian.Uint64(instruction.Data[1:]))

	require.Len(t, instruction.Accounts, 4)
	assert.True(t, instruction.Accounts[0].IsWritable)
	assert.False(t, instruction.Accounts[1].IsWritable, "mint is read-only")
	assert.True(t, instruction.Accounts[2].IsWritable)
	assert.True(t, instruction.Accounts[3].IsSigner, "owner authorizes the transfer")
}

func TestLedger_TransferChecked_RejectsMintMismatch(t *testing.T) {
	ledger := NewLedger()
	mintA := []byte("mint-a-address-32-bytes-padded!!")
	mintB := []byte("mint-b-address-32-bytes-padded!!")
	source := []byte("source-address-32-bytes-padded!!")
	dest := []byte("dest-address-32-bytes-padded!!!!")

	ledger.Seed(source, mintA, source, 1_000)
	ledger.CreateAccount(dest, mintB, dest)

	err := ledger.TransferChecked(source, dest, mintA, 100)
	assert.Equal(t, ErrMintMismatch, err)
}

func TestLedger_TransferChecked_MovesBalance(t *testing.T) {
	ledger := NewLedger()
	mint := []byte("mint-address-32-bytes-padded!!!!")
	source := []byte("source-address-32-bytes-padded!!")
	dest := []byte("dest-address-32-bytes-padded!!!!")

	ledger.Seed(source, mint, source, 1_000)
	ledger.CreateAccount(dest, mint, dest)

	require.NoError(t, ledger.TransferChecked(source, dest, mint, 400))

	srcBalance, err := ledger.Balance(source)
	require.NoError(t, err)
	dstBalance, err := ledger.Balance(dest)
	require.NoError(t, err)

	assert.Equal(t, uint64(600), srcBalance)
	assert.Equal(t, uint64(400), dstBalance)
}
