// Package system models the slice of the host runtime's system program this
// program depends on: moving native currency, and an in-memory ledger
// standing in for the runtime's account balances.
package system

import (
	"encoding/binary"

	"github.com/mr-tron/base58"

	"github.com/trixky/Lockfun-Program/pkg/solana"
)

// ProgramID is the address of the system program.
var ProgramID = mustDecode("11111111111111111111111111111111")

// Command is the instruction tag the system program switches on, encoded as
// a little-endian u32 at the start of the instruction data.
type Command uint32

const (
	// CommandTransfer moves lamports from the funding account to the
	// recipient.
	CommandTransfer Command = 2
)

// Transfer builds a native-currency transfer instruction moving lamports
// from from to to, authorized by from's signature.
func Transfer(from, to []byte, lamports uint64) solana.Instruction {
	data := make([]byte, 4+8)
	binary.LittleEndian.PutUint32(data, uint32(CommandTransfer))
	binary.LittleEndian.PutUint64(data[4:], lamports)

	return solana.NewInstruction(
		ProgramID,
		data,
		solana.NewAccountMeta(from, true),
		solana.NewAccountMeta(to, false),
	)
}

func mustDecode(encoded string) []byte {
	decoded, err := base58.Decode(encoded)
	if err != nil {
		panic(err)
	}
	return decoded
}
