package game

import (
	"math/rand/v2"
	"sync"
	"time"

	"pong-service/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ballState struct {
	dirX, dirZ float64
	posX, posZ float64
}

// Room is one paired match context. conns/users are fixed at formation and
// indexed by PlayerSide; everything mutable is guarded by mu so one inbound
// event is atomic with respect to other events on the same room. closed
// marks a torn-down room so late events on a stale pointer become no-ops.
type Room struct {
	mu sync.Mutex

	id       int64
	gameType domain.GameType
	gameMode domain.GameMode
	status   domain.GameStatus

	conns [2]uuid.UUID
	users [2]int64
	ready [2]bool
	score [2]int
	ball  ballState

	startTime time.Time
	endTime   time.Time

	closed bool
}

// serveBall draws a fresh serve vector and resets the authoritative ball
// position to center. Caller holds r.mu.
func (r *Room) serveBall() (dirX, dirZ float64) {
	dirX = rand.Float64()*-2 + 1
	dirZ = (rand.Float64()*-2 + 1) * (flattenMin + rand.Float64()*(flattenMax-flattenMin))
	r.ball = ballState{dirX: dirX, dirZ: dirZ}
	return dirX, dirZ
}

// resetForRematch recycles a friendly room in place: same id, same sides,
// back to WAIT with a clean score sheet. Caller holds r.mu.
func (r *Room) resetForRematch() {
	r.status = domain.StatusWait
	r.ready = [2]bool{}
	r.score = [2]int{}
	r.ball = ballState{}
	r.startTime = time.Time{}
	r.endTime = time.Time{}
}

// MarkReady flips the caller's ready flag. The WAIT to GAME transition fires
// exactly once, when the second flag lands; a late or repeated ready is a
// no-op.
func (e *Engine) MarkReady(connID uuid.UUID) error {
	r, side, err := e.roomOf(connID)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.status == domain.StatusGame {
		return nil
	}
	r.ready[side] = true
	if !(r.ready[domain.SideLeft] && r.ready[domain.SideRight]) {
		return nil
	}

	r.status = domain.StatusGame
	r.startTime = time.Now()
	r.score = [2]int{}
	dirX, dirZ := r.serveBall()

	start := domain.StartGamePayload{
		BallDirX:  dirX,
		BallDirZ:  dirZ,
		IsFirst:   true,
		BallSpeed: BallSpeed(r.gameMode),
	}
	start.Side = domain.SideLeft
	e.notifier.Notify(r.conns[domain.SideLeft], EventStartGame, start)
	start.Side = domain.SideRight
	e.notifier.Notify(r.conns[domain.SideRight], EventStartGame, start)

	zap.L().Info("game started",
		zap.Int64("room_id", r.id),
		zap.Int("game_mode", int(r.gameMode)))
	return nil
}

// MovePaddle relays a paddle report to the rival. The lateral and vertical
// coordinates are pinned server-side to the mover's fixed paddle transform;
// only the Z position passes through.
func (e *Engine) MovePaddle(connID uuid.UUID, move domain.PaddleMovePayload) error {
	r, side, err := e.roomOf(connID)
	if err != nil {
		return err
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	rival := r.conns[side.Rival()]
	r.mu.Unlock()

	e.notifier.Notify(rival, EventMovePaddle, domain.PaddleMovePayload{
		PaddlePosX: paddlePosX[side],
		PaddlePosY: PaddlePosY,
		PaddlePosZ: move.PaddlePosZ,
	})
	return nil
}

// SendEmoji relays an emoji code to the rival after range-checking it.
func (e *Engine) SendEmoji(connID uuid.UUID, code int) error {
	if code < domain.EmojiHi || code > domain.EmojiBadWords {
		return domain.ErrInvalidEmoji
	}

	r, side, err := e.roomOf(connID)
	if err != nil {
		return err
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	rival := r.conns[side.Rival()]
	r.mu.Unlock()

	e.notifier.Notify(rival, EventEmoji, domain.EmojiPayload{Type: code})
	return nil
}
