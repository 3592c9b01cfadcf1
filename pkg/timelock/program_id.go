package timelock

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
)

// ProgramID is the address this program is deployed under. Every address
// derivation is scoped to it, so that two programs never collide even if
// they happen to be given identical seeds.
var ProgramID = mustDecodeAddress("time2Z2SCnn3qYg3ULKVtdkh8YmZ5jFdKicnA1W2YnJ")

// Addresses of the two supporting sub-programs every operation's account
// list names: the fungible-token program that owns mints and token accounts,
// and the host runtime's system program that moves native currency and
// creates accounts.
var (
	SystemProgramID = mustDecodeAddress("11111111111111111111111111111111")
	TokenProgramID  = mustDecodeAddress("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
)

func mustDecodeAddress(encoded string) ed25519.PublicKey {
	decoded, err := base58.Decode(encoded)
	if err != nil {
		panic(err)
	}
	return decoded
}
