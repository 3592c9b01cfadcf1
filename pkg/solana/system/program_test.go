package system

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransfer_EncodesCommandAndLamports(t *testing.T) {
	from := []byte("from-account-address")
	to := []byte("to-account-address!!")

	instruction := Transfer(from, to, 30_000_000)

	assert.Equal(t, ProgramID, []byte(instruction.Program))
	require.Len(t, instruction.Data, 12)
	assert.Equal(t, uint32(CommandTransfer), binary.LittleEndian.Uint32(instruction.Data[:4]))
	assert.Equal(t, uint64(30_000_000), binary.LittleEndian.Uint64(instruction.Data[4:]))

	require.Len(t, instruction.Accounts, 2)
	assert.True(t, instruction.Accounts[0].IsSigner, "from must authorize the transfer")
	assert.False(t, instruction.Accounts[1].IsSigner)
}

func TestLedger_Transfer_RejectsInsufficientFunds(t *testing.T) {
	ledger := NewLedger()
	from := []byte("from-account-address")
	to := []byte("to-account-address!!")

	ledger.Seed(from, 100)

	err := ledger.Transfer(from, to, 200)
	assert.Equal(t, ErrInsufficientFunds, err)
	assert.Equal(t, uint64(100), ledger.Balance(from))
	assert.Equal(t, uint64(0), ledger.Balance(to))
}

func TestLedger_Transfer_MovesBalance(t *testing.T) {
	ledger := NewLedger()
	from := []byte("from-account-address")
	to := []byte("to-account-address!!")

	ledger.Seed(from, 100)

	require.NoError(t, ledger.Transfer(from, to, 40))
	assert.Equal(t, uint64(60), ledger.Balance(from))
	assert.Equal(t, uint64(40), ledger.Balance(to))
}
