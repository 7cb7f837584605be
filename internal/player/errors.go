package player

import "errors"

var (
	// ErrAlreadyStarted indicates the one-shot guard was already taken.
	ErrAlreadyStarted = errors.New("player: already started")

	// ErrNoRegion indicates a player constructed without a display region.
	ErrNoRegion = errors.New("player: nil region")
)
