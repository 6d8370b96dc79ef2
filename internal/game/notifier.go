package game

import (
	"context"

	"pong-service/domain"

	"github.com/google/uuid"
)

// Outbound socket event names.
const (
	EventHandshake  = "handShake"
	EventStartGame  = "startGame"
	EventMovePaddle = "movePaddle"
	EventEmoji      = "sendEmoji"
	EventBallHit    = "ballHit"
	EventGameOver   = "gameOver"
	EventKickout    = "kickout"
	EventDenyInvite = "denyInvite"
)

// Notifier delivers one event to one connection. Implementations must not
// block and must tolerate connections that are already gone; the engine
// calls it while holding room state.
type Notifier interface {
	Notify(connID uuid.UUID, event string, payload any)
}

// RecordSink persists a finished match. A failure is surfaced to operators
// only; room teardown never waits on it.
type RecordSink interface {
	SaveMatch(ctx context.Context, rec *domain.MatchRecord) error
}

// EventPublisher fans a finished match out to the rest of the platform.
// Same failure policy as RecordSink.
type EventPublisher interface {
	PublishMatchFinished(ctx context.Context, rec *domain.MatchRecord) error
}
