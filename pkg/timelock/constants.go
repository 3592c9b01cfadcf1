package timelock

import "crypto/ed25519"

// Seeds used for PDA-style address derivation. Changing any of these changes
// every address the program derives; treat them as part of the wire format.
var (
	globalStateSeed = []byte("global_state")
	lockSeed        = []byte("lock")
	vaultSeed       = []byte("vault")
)

// Account discriminators. Spec.md leaves the exact bytes implementation
// defined and only requires that each account kind carry a distinct, stable
// 8-byte tag clients can memcmp against at offset 0.
var (
	globalStateDiscriminator = [8]byte{0x47, 0x4c, 0x4f, 0x42, 0x41, 0x4c, 0x01, 0x00} // "GLOBAL" + version
	lockDiscriminator        = [8]byte{0x4c, 0x4f, 0x43, 0x4b, 0x00, 0x00, 0x00, 0x01} // "LOCK" + version
)

// FeeLamports is the fixed native-currency fee charged once, at lock
// creation: 0.03 units on the target chain's base denomination.
const FeeLamports uint64 = 30_000_000

// feeRecipient is the fixed address every creation fee is routed to. It is
// compiled into the program, not a runtime parameter.
var feeRecipient = mustDecodeAddress("CsJ1qQSA7hsxAH27cqENqhTy7vBUcdMdVQXAMubJniPo")

// FeeRecipient returns the program's fixed fee recipient address.
func FeeRecipient() ed25519.PublicKey {
	return feeRecipient
}
