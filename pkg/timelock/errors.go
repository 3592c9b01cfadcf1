package timelock

// Error is a closed, stable taxonomy of failure reasons the program surfaces
// to callers. The numeric value has no external meaning beyond uniqueness;
// callers pattern-match on the sentinel values below, following the style of
// pkg/code/data/timelock's exported Err* sentinels.
type Error uint32

const (
	errUnknown Error = iota

	// ErrAmountZero: amount or additional_amount was zero.
	ErrAmountZero

	// ErrTimestampInPast: the requested unlock_timestamp is not strictly in
	// the future at creation time.
	ErrTimestampInPast

	// ErrCannotShortenTimestamp: extend's new timestamp did not strictly
	// increase on the lock's current stored deadline.
	ErrCannotShortenTimestamp

	// ErrAlreadyUnlocked: the lock's terminal flag is already set.
	ErrAlreadyUnlocked

	// ErrTooEarly: unlock was attempted before the deadline.
	ErrTooEarly

	// ErrUnauthorized: the signer is not the lock's recorded owner, or a
	// supplied account does not match its expected seed derivation.
	ErrUnauthorized

	// ErrInvalidMint: the supplied mint does not equal the lock's recorded
	// mint.
	ErrInvalidMint

	// ErrDuplicateAccounts: the vault and the owner's token account resolve
	// to the same address.
	ErrDuplicateAccounts

	// ErrInvalidFeeRecipient: the supplied fee recipient does not equal the
	// program's fixed fee recipient.
	ErrInvalidFeeRecipient
)

var errorNames = map[Error]string{
	ErrAmountZero:             "amount_zero",
	ErrTimestampInPast:        "timestamp_in_past",
	ErrCannotShortenTimestamp: "cannot_shorten_timestamp",
	ErrAlreadyUnlocked:        "already_unlocked",
	ErrTooEarly:               "too_early",
	ErrUnauthorized:           "unauthorized",
	ErrInvalidMint:            "invalid_mint",
	ErrDuplicateAccounts:      "duplicate_accounts",
	ErrInvalidFeeRecipient:    "invalid_fee_recipient",
}

func (e Error) Error() string {
	if name, ok := errorNames[e]; ok {
		return name
	}
	return "unknown_timelock_error"
}
