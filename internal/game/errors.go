package game

import "errors"

// Domain failures. Every one of them leaves the state untouched; callers
// branch with errors.Is and surface the action as unavailable.
var (
	// ErrInsufficientResources rejects a spend the ledger cannot cover.
	ErrInsufficientResources = errors.New("insufficient resources")

	// ErrUnknownID rejects an operation naming an id absent from the catalog.
	ErrUnknownID = errors.New("unknown id")

	// ErrIneligible rejects an ascension or transcendence below threshold.
	ErrIneligible = errors.New("prestige requirements not met")

	// ErrAlreadyCompleted rejects duplicate completion or claim attempts.
	ErrAlreadyCompleted = errors.New("already completed")

	// ErrLocked rejects an operation gated behind a player level not reached.
	ErrLocked = errors.New("locked")

	// ErrNotAvailable rejects an operation whose window or precondition is
	// not currently open (expired special quest, unaccepted timed quest).
	ErrNotAvailable = errors.New("not available")

	// ErrNoCharacter rejects play actions before character creation.
	ErrNoCharacter = errors.New("no character created")

	// ErrNegativeAmount rejects a credit that would debit the ledger.
	ErrNegativeAmount = errors.New("negative amount")
)
