package timelock

import "errors"

// Decode-time failures are distinct from the closed, named business-error
// taxonomy in errors.go: they mean the bytes handed to the codec could never
// have come from this program, as opposed to a precondition the program
// itself rejects.
var (
	ErrInvalidProgram         = errors.New("invalid program id")
	ErrInvalidAccountData     = errors.New("unexpected account data")
	ErrInvalidInstructionData = errors.New("unexpected instruction data")
)
