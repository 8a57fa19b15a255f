package domain

import "errors"

var (
	ErrUnknownTokenType  = errors.New("unknown token type")
	ErrTierUnavailable   = errors.New("pricing tier unavailable")
	ErrConfiguration     = errors.New("configuration error")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrCurrencyMismatch  = errors.New("currency mismatch")
	ErrAdminNotFound     = errors.New("administrator not found")
	ErrRecordNotFound    = errors.New("earnings record not found")
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrDuplicateEvent marks the at-most-once no-op path: the payout for
	// this event identifier was already applied, so the stored result is
	// returned instead of allocating a second time.
	ErrDuplicateEvent = errors.New("duplicate payout event")
)
