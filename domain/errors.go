package domain

import "errors"

// Caller-visible rejections of a single event. They never corrupt shared
// state; cheating is not an error but a game outcome (EndCheating).
var (
	ErrAlreadyInRoom   = errors.New("player already in a game room")
	ErrInvalidGameMode = errors.New("invalid game mode")
	ErrNotQueued       = errors.New("player was not in queue")
	ErrNoSuchInvite    = errors.New("no matching invite")
	ErrInvalidEmoji    = errors.New("invalid emoji code")
	ErrUnknownSession  = errors.New("unknown session")
	ErrUnknownRoom     = errors.New("unknown game room")
	ErrNotInRoom       = errors.New("player not in a game room")
)
