// Package token models the slice of the SPL-token-style fungible-token
// subsystem this program's vault depends on: the TransferChecked instruction
// shape and an in-memory ledger standing in for the real token program the
// host runtime would otherwise provide.
package token

import (
	"encoding/binary"

	"github.com/mr-tron/base58"

	"github.com/trixky/Lockfun-Program/pkg/solana"
)

// Command is the single-byte instruction tag the token program switches on.
type Command byte

const (
	// CommandTransferChecked moves amount units of mint from source to
	// destination, authorized by owner; it is rejected if mint doesn't match
	// the actual mint of source/destination.
	CommandTransferChecked Command = 12
)

// TransferChecked builds a TransferChecked instruction.
//
// Reference: https://github.com/solana-labs/solana-program-library/blob/b011698251981b5a12088acba18fad1d41c3719a/token/program/src/instruction.rs#L230-L252
func TransferChecked(source, mint, dest, owner []byte, amount uint64) solana.Instruction {
	data := make([]byte, 1+8)
	data[0] = byte(CommandTransferChecked)
	binary.LittleEndian.PutUint64(data[1:], amount)

	return solana.NewInstruction(
		ProgramID,
		data,
		solana.NewAccountMeta(source, false),
		solana.NewReadonlyAccountMeta(mint, false),
		solana.NewAccountMeta(dest, false),
		solana.NewReadonlyAccountMeta(owner, true),
	)
}

// ProgramID is the address of the fungible-token program.
var ProgramID = mustDecode("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")

func mustDecode(encoded string) []byte {
	decoded, err := base58.Decode(encoded)
	if err != nil {
		panic(err)
	}
	return decoded
}
