package game

import (
	"time"

	"pong-service/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BallHit handles a ball report from the rallying side. The report must pass
// the trajectory-consistency check; then either a goal line was crossed
// (score, finish or round restart) or the ball stays in play (authoritative
// state update, verbatim relay to the rival).
func (e *Engine) BallHit(connID uuid.UUID, report domain.BallHitPayload) error {
	r, side, err := e.roomOf(connID)
	if err != nil {
		return err
	}

	r.mu.Lock()
	if r.closed || r.status != domain.StatusGame {
		r.mu.Unlock()
		return nil
	}

	if !validHit(r.ball, report) {
		zap.L().Warn("ball hit failed trajectory check",
			zap.Int64("room_id", r.id),
			zap.Int("reporter_side", int(side)))
		rec, recycled := e.finishLocked(r, side.Rival(), domain.EndCheating)
		r.mu.Unlock()
		e.afterFinish(r, rec, recycled)
		return nil
	}

	if scoreSide, crossed := goalCrossed(report.BallPosX); crossed {
		r.score[scoreSide]++
		if r.score[scoreSide] >= MaxScore {
			rec, recycled := e.finishLocked(r, scoreSide, domain.EndNormal)
			r.mu.Unlock()
			e.afterFinish(r, rec, recycled)
			return nil
		}
		e.restartRoundLocked(r)
		r.mu.Unlock()
		return nil
	}

	r.ball = ballState{
		dirX: report.BallDirX, dirZ: report.BallDirZ,
		posX: report.BallPosX, posZ: report.BallPosZ,
	}
	rival := r.conns[side.Rival()]
	r.mu.Unlock()

	e.notifier.Notify(rival, EventBallHit, report)
	return nil
}

// ValidateState runs the per-tick cheat check on a full-state report. A
// violation is not an error back to the reporter: the room is finished with
// the reporter's rival as winner.
func (e *Engine) ValidateState(connID uuid.UUID, state domain.FullStatePayload) error {
	r, side, err := e.roomOf(connID)
	if err != nil {
		return err
	}

	r.mu.Lock()
	if r.closed || r.status != domain.StatusGame {
		r.mu.Unlock()
		return nil
	}
	if validState(r.gameMode, state) {
		r.mu.Unlock()
		return nil
	}

	zap.L().Warn("full state report out of bounds",
		zap.Int64("room_id", r.id),
		zap.Int("reporter_side", int(side)))
	rec, recycled := e.finishLocked(r, side.Rival(), domain.EndCheating)
	r.mu.Unlock()
	e.afterFinish(r, rec, recycled)
	return nil
}

// restartRoundLocked keeps the score and deals a fresh serve to both sides.
// Caller holds r.mu.
func (e *Engine) restartRoundLocked(r *Room) {
	dirX, dirZ := r.serveBall()
	restart := domain.StartGamePayload{
		BallDirX:   dirX,
		BallDirZ:   dirZ,
		IsFirst:    false,
		LeftScore:  r.score[domain.SideLeft],
		RightScore: r.score[domain.SideRight],
		BallSpeed:  BallSpeed(r.gameMode),
		Side:       domain.SideNone,
	}
	e.notifier.Notify(r.conns[domain.SideLeft], EventStartGame, restart)
	e.notifier.Notify(r.conns[domain.SideRight], EventStartGame, restart)
}

// finishLocked terminates the match: outcome recorded, both sides notified,
// and the room either recycled (friendly match ending normally) or marked
// closed for teardown. DISCONNECT and CHEATING discard the in-progress score
// so the persisted record unambiguously reflects a forced result. Caller
// holds r.mu; persistence and teardown happen in afterFinish, outside the
// room lock.
func (e *Engine) finishLocked(r *Room, winner domain.PlayerSide, reason domain.EndReason) (*domain.MatchRecord, bool) {
	loser := winner.Rival()
	r.endTime = time.Now()
	if reason != domain.EndNormal {
		r.score[winner] = MaxScore
		r.score[loser] = 0
	}

	result := domain.GameOverPayload{
		Winner:     winner,
		LeftScore:  r.score[domain.SideLeft],
		RightScore: r.score[domain.SideRight],
		Reason:     reason,
	}
	e.notifier.Notify(r.conns[domain.SideLeft], EventGameOver, result)
	e.notifier.Notify(r.conns[domain.SideRight], EventGameOver, result)

	rec := &domain.MatchRecord{
		WinnerID:    r.users[winner],
		WinnerScore: r.score[winner],
		WinnerSide:  winner,
		LoserID:     r.users[loser],
		LoserScore:  r.score[loser],
		LoserSide:   loser,
		GameType:    r.gameType,
		GameMode:    r.gameMode,
		StartTime:   r.startTime,
		EndTime:     r.endTime,
		EndReason:   reason,
	}

	zap.L().Info("game over",
		zap.Int64("room_id", r.id),
		zap.Int("winner_side", int(winner)),
		zap.Int("reason", int(reason)))

	recycled := r.gameType == domain.GameTypeFriend && reason == domain.EndNormal
	if recycled {
		r.resetForRematch()
	} else {
		r.closed = true
	}
	return rec, recycled
}
