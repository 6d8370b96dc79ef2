package game

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"pong-service/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Engine is the session manager for every live game socket. The engine lock
// guards the shared maps (sessions, queue slots, invites, room index) so
// pairing is atomic; each Room carries its own lock so events on different
// rooms never block each other. Lock order is engine before room, and no
// path re-enters the engine lock while holding a room lock.
type Engine struct {
	mu sync.Mutex

	sessions *PlayerRegistry
	queue    *MatchQueue
	invites  *FriendInviteRegistry
	rooms    map[int64]*Room
	roomSeq  int64

	notifier  Notifier
	sink      RecordSink
	publisher EventPublisher
}

func NewEngine(notifier Notifier, sink RecordSink, publisher EventPublisher) *Engine {
	return &Engine{
		sessions:  newPlayerRegistry(),
		queue:     newMatchQueue(),
		invites:   newFriendInviteRegistry(),
		rooms:     make(map[int64]*Room),
		notifier:  notifier,
		sink:      sink,
		publisher: publisher,
	}
}

// Register creates an idle session for a new connection.
func (e *Engine) Register(connID uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, err := e.sessions.register(connID)
	return err
}

// Disconnect is the single cancellation signal for a connection. The session
// is removed first, so a racing second disconnect or late event resolves to
// an unknown session and cannot re-enter cleanup. A queued or inviting
// session just vacates its slot; a WAIT room kicks the rival out; a GAME
// room is forfeited to the rival, friendly or not.
func (e *Engine) Disconnect(connID uuid.UUID) {
	e.mu.Lock()
	s, ok := e.sessions.get(connID)
	if !ok {
		e.mu.Unlock()
		return
	}
	e.sessions.remove(connID)

	var room *Room
	switch s.Phase {
	case domain.PhaseQueued:
		if e.queue.holds(s.GameMode, connID) {
			e.queue.clear(s.GameMode)
		}
	case domain.PhaseInviting:
		if pending, ok := e.invites.get(s.UserID); ok && pending == connID {
			e.invites.remove(s.UserID)
		}
	case domain.PhaseInRoom:
		room = e.rooms[s.RoomID]
	}
	e.mu.Unlock()

	if room == nil {
		return
	}

	room.mu.Lock()
	if room.closed {
		room.mu.Unlock()
		return
	}
	if room.status == domain.StatusWait {
		room.closed = true
		rival := room.conns[s.Side.Rival()]
		room.mu.Unlock()
		e.notifier.Notify(rival, EventKickout, struct{}{})
		e.teardown(room)
		return
	}
	rec, recycled := e.finishLocked(room, s.Side.Rival(), domain.EndDisconnect)
	room.mu.Unlock()
	e.afterFinish(room, rec, recycled)
}

// Enqueue binds the session to a ranked-match mode and either pairs it with
// the pending waiter or becomes the pending waiter itself. Check-and-pop
// runs under the engine lock, so a slot can never hold two players.
func (e *Engine) Enqueue(connID uuid.UUID, mode domain.GameMode, userID int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions.get(connID)
	if !ok {
		return domain.ErrUnknownSession
	}
	if s.Phase == domain.PhaseQueued && e.queue.holds(s.GameMode, connID) {
		e.queue.clear(s.GameMode)
	}
	if err := bindSession(s, userID, mode, domain.GameTypeMatch, 0); err != nil {
		return err
	}
	s.Phase = domain.PhaseQueued

	if pending, ok := e.queue.pop(mode); ok && pending != connID {
		e.formRoomLocked(pending, connID, domain.GameTypeMatch, mode)
		return nil
	}
	e.queue.put(mode, connID)
	return nil
}

// Dequeue removes the session from its pending slot and resets it to idle.
func (e *Engine) Dequeue(connID uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions.get(connID)
	if !ok {
		return domain.ErrUnknownSession
	}
	if s.Phase != domain.PhaseQueued || !e.queue.holds(s.GameMode, connID) {
		return domain.ErrNotQueued
	}
	e.queue.clear(s.GameMode)
	s.Reset()
	return nil
}

// Invite records an outbound friend invite. Delivery of the invitation to
// the friend happens out-of-band (social service); the engine only holds
// the pending entry the friend's accept or decline will resolve against.
func (e *Engine) Invite(connID uuid.UUID, mode domain.GameMode, userID, friendID int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions.get(connID)
	if !ok {
		return domain.ErrUnknownSession
	}
	if err := bindSession(s, userID, mode, domain.GameTypeFriend, friendID); err != nil {
		return err
	}
	s.Phase = domain.PhaseInviting
	e.invites.put(userID, connID)

	zap.L().Info("friend invite pending",
		zap.Int64("user_id", userID),
		zap.Int64("friend_id", friendID))
	return nil
}

// AcceptInvite pairs the accepter with the inviter, provided the invite is
// still pending and the inviter still names this accepter. A stale or
// mismatched accept resets the accepter and kicks them back to the lobby
// rather than erroring: the invite may have been withdrawn legitimately.
func (e *Engine) AcceptInvite(connID uuid.UUID, userID, inviterID int64) error {
	e.mu.Lock()

	s, ok := e.sessions.get(connID)
	if !ok {
		e.mu.Unlock()
		return domain.ErrUnknownSession
	}

	host, hostConn := e.pendingInviteLocked(inviterID, userID)
	if host == nil {
		s.Reset()
		e.mu.Unlock()
		e.notifier.Notify(connID, EventKickout, struct{}{})
		return nil
	}

	e.invites.remove(inviterID)
	mode := host.GameMode
	if err := bindSession(s, userID, mode, domain.GameTypeFriend, inviterID); err != nil {
		e.mu.Unlock()
		return err
	}
	e.formRoomLocked(hostConn, connID, domain.GameTypeFriend, mode)
	e.mu.Unlock()
	return nil
}

// DeclineInvite clears the pending invite and tells the inviter.
func (e *Engine) DeclineInvite(connID uuid.UUID, userID, inviterID int64) error {
	e.mu.Lock()

	if _, ok := e.sessions.get(connID); !ok {
		e.mu.Unlock()
		return domain.ErrUnknownSession
	}

	host, hostConn := e.pendingInviteLocked(inviterID, userID)
	if host == nil {
		e.mu.Unlock()
		return domain.ErrNoSuchInvite
	}
	e.invites.remove(inviterID)
	host.Reset()
	e.mu.Unlock()

	e.notifier.Notify(hostConn, EventDenyInvite, struct{}{})
	return nil
}

// pendingInviteLocked resolves an invite by inviter user id and verifies the
// mutual-consent condition. Caller holds e.mu.
func (e *Engine) pendingInviteLocked(inviterID, expectedFriend int64) (*domain.Session, uuid.UUID) {
	hostConn, ok := e.invites.get(inviterID)
	if !ok {
		return nil, uuid.Nil
	}
	host, ok := e.sessions.get(hostConn)
	if !ok || host.Phase != domain.PhaseInviting || host.FriendID != expectedFriend {
		return nil, uuid.Nil
	}
	return host, hostConn
}

// bindSession attaches pairing intent to a session. Rejected while the
// session is already in a room, and the "none" mode sentinel never binds.
func bindSession(s *domain.Session, userID int64, mode domain.GameMode, gameType domain.GameType, friendID int64) error {
	if s.Phase == domain.PhaseInRoom {
		return domain.ErrAlreadyInRoom
	}
	if !mode.Valid() {
		return domain.ErrInvalidGameMode
	}
	s.UserID = userID
	s.GameType = gameType
	s.GameMode = mode
	s.FriendID = friendID
	return nil
}

// formRoomLocked allocates a room for two connections. Sides are an unbiased
// coin flip, never skill- or order-based. Caller holds e.mu; both sessions
// are known to exist.
func (e *Engine) formRoomLocked(a, b uuid.UUID, gameType domain.GameType, mode domain.GameMode) {
	left, right := a, b
	if rand.IntN(2) == 0 {
		left, right = right, left
	}

	e.roomSeq++
	r := &Room{
		id:       e.roomSeq,
		gameType: gameType,
		gameMode: mode,
		status:   domain.StatusWait,
		conns:    [2]uuid.UUID{domain.SideLeft: left, domain.SideRight: right},
	}

	for side, connID := range r.conns {
		s, _ := e.sessions.get(connID)
		s.Phase = domain.PhaseInRoom
		s.GameType = gameType
		s.GameMode = mode
		s.RoomID = r.id
		s.Side = domain.PlayerSide(side)
		r.users[side] = s.UserID
	}
	e.rooms[r.id] = r

	for side, connID := range r.conns {
		e.notifier.Notify(connID, EventHandshake, domain.HandshakePayload{
			Side:   domain.PlayerSide(side),
			RoomID: r.id,
		})
	}

	zap.L().Info("room formed",
		zap.Int64("room_id", r.id),
		zap.Int("game_type", int(gameType)),
		zap.Int("game_mode", int(mode)))
}

// roomOf resolves a connection to its room and side.
func (e *Engine) roomOf(connID uuid.UUID) (*Room, domain.PlayerSide, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions.get(connID)
	if !ok {
		return nil, domain.SideNone, domain.ErrUnknownSession
	}
	if s.Phase != domain.PhaseInRoom {
		return nil, domain.SideNone, domain.ErrNotInRoom
	}
	r, ok := e.rooms[s.RoomID]
	if !ok {
		return nil, domain.SideNone, domain.ErrUnknownRoom
	}
	return r, s.Side, nil
}

// afterFinish runs the post-terminal work that must not hold the room lock:
// persistence fan-out, and teardown unless the room was recycled for a
// rematch.
func (e *Engine) afterFinish(r *Room, rec *domain.MatchRecord, recycled bool) {
	e.persistResult(rec)
	if !recycled {
		e.teardown(r)
	}
}

// persistResult hands the finished match to the sink and the event bus.
// Both are fire-and-forget: a lost record must never strand live sessions.
func (e *Engine) persistResult(rec *domain.MatchRecord) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := e.sink.SaveMatch(ctx, rec); err != nil {
			zap.L().Error("failed to save match record",
				zap.Int64("winner_id", rec.WinnerID),
				zap.Int64("loser_id", rec.LoserID),
				zap.Error(err))
		}
		if e.publisher != nil {
			if err := e.publisher.PublishMatchFinished(ctx, rec); err != nil {
				zap.L().Warn("failed to publish match finished event", zap.Error(err))
			}
		}
	}()
}

// teardown resets both sessions to idle and drops the room from the index.
func (e *Engine) teardown(r *Room) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, connID := range r.conns {
		if s, ok := e.sessions.get(connID); ok && s.Phase == domain.PhaseInRoom && s.RoomID == r.id {
			s.Reset()
		}
	}
	delete(e.rooms, r.id)
}

// Stats is a point-in-time operational snapshot for the HTTP surface.
type Stats struct {
	Sessions    int `json:"sessions"`
	Rooms       int `json:"rooms"`
	ActiveGames int `json:"active_games"`
	Waiting     int `json:"waiting"`
}

func (e *Engine) Stats() Stats {
	e.mu.Lock()
	stats := Stats{
		Sessions: e.sessions.count(),
		Rooms:    len(e.rooms),
		Waiting:  e.queue.waiting(),
	}
	rooms := make([]*Room, 0, len(e.rooms))
	for _, r := range e.rooms {
		rooms = append(rooms, r)
	}
	e.mu.Unlock()

	for _, r := range rooms {
		r.mu.Lock()
		if r.status == domain.StatusGame {
			stats.ActiveGames++
		}
		r.mu.Unlock()
	}
	return stats
}
