package domain

import (
	"time"

	"github.com/google/uuid"
)

type GameType int

const (
	GameTypeNone GameType = iota
	GameTypeMatch
	GameTypeFriend
)

type GameMode int

const (
	GameModeNone GameMode = iota
	GameModeNormal
	GameModeFast
)

func (m GameMode) Valid() bool {
	return m == GameModeNormal || m == GameModeFast
}

type PlayerSide int

const (
	SideNone  PlayerSide = -1
	SideLeft  PlayerSide = 0
	SideRight PlayerSide = 1
)

// Rival returns the opposite side of a two-player room.
func (s PlayerSide) Rival() PlayerSide {
	return 1 - s
}

type GameStatus int

const (
	StatusWait GameStatus = iota
	StatusGame
)

type EndReason int

const (
	EndNormal EndReason = iota
	EndDisconnect
	EndCheating
)

// Emoji codes relayable between players. Anything outside [EmojiHi, EmojiBadWords]
// is rejected, not relayed.
const (
	EmojiHi = iota
	EmojiGood
	EmojiSad
	EmojiAngry
	EmojiBadWords
)

type SessionPhase int

const (
	PhaseIdle SessionPhase = iota
	PhaseQueued
	PhaseInviting
	PhaseInRoom
)

// Session is the transient per-connection state. Fields past Phase are only
// meaningful for the phase that set them: GameMode/GameType from Queued or
// Inviting on, FriendID while Inviting, RoomID and Side only once InRoom.
type Session struct {
	ConnID   uuid.UUID
	UserID   int64
	Phase    SessionPhase
	GameType GameType
	GameMode GameMode
	FriendID int64
	RoomID   int64
	Side     PlayerSide
}

// Reset returns the session to idle, dropping every pairing field.
func (s *Session) Reset() {
	s.Phase = PhaseIdle
	s.GameType = GameTypeNone
	s.GameMode = GameModeNone
	s.FriendID = 0
	s.RoomID = 0
	s.Side = SideNone
}

// MatchRecord is the summary handed to the record sink and the event bus
// once per finished room.
type MatchRecord struct {
	WinnerID    int64      `json:"winner_id"`
	WinnerScore int        `json:"winner_score"`
	WinnerSide  PlayerSide `json:"winner_side"`
	LoserID     int64      `json:"loser_id"`
	LoserScore  int        `json:"loser_score"`
	LoserSide   PlayerSide `json:"loser_side"`
	GameType    GameType   `json:"game_type"`
	GameMode    GameMode   `json:"game_mode"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	EndReason   EndReason  `json:"end_reason"`
}
