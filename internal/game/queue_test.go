package game

import (
	"testing"

	"pong-service/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchQueueSingleSlotPerMode(t *testing.T) {
	q := newMatchQueue()
	a := uuid.New()
	b := uuid.New()

	_, ok := q.pop(domain.GameModeNormal)
	assert.False(t, ok, "empty slot must not pop")

	q.put(domain.GameModeNormal, a)
	assert.True(t, q.holds(domain.GameModeNormal, a))
	assert.False(t, q.holds(domain.GameModeFast, a))
	assert.Equal(t, 1, q.waiting())

	// A second put overwrites; the slot never holds two.
	q.put(domain.GameModeNormal, b)
	assert.False(t, q.holds(domain.GameModeNormal, a))
	assert.Equal(t, 1, q.waiting())

	got, ok := q.pop(domain.GameModeNormal)
	require.True(t, ok)
	assert.Equal(t, b, got)
	assert.Equal(t, 0, q.waiting())

	_, ok = q.pop(domain.GameModeNormal)
	assert.False(t, ok, "pop must clear the slot")
}

func TestMatchQueueModesAreIndependent(t *testing.T) {
	q := newMatchQueue()
	a := uuid.New()
	b := uuid.New()

	q.put(domain.GameModeNormal, a)
	q.put(domain.GameModeFast, b)
	assert.Equal(t, 2, q.waiting())

	got, ok := q.pop(domain.GameModeFast)
	require.True(t, ok)
	assert.Equal(t, b, got)
	assert.True(t, q.holds(domain.GameModeNormal, a))
}

func TestPlayerRegistry(t *testing.T) {
	r := newPlayerRegistry()
	connID := uuid.New()

	s, err := r.register(connID)
	require.NoError(t, err)
	assert.Equal(t, connID, s.ConnID)
	assert.Equal(t, domain.PhaseIdle, s.Phase)
	assert.Equal(t, domain.SideNone, s.Side)
	assert.Equal(t, 1, r.count())

	_, err = r.register(connID)
	assert.Error(t, err, "duplicate registration must fail")

	got, ok := r.get(connID)
	require.True(t, ok)
	assert.Same(t, s, got)

	r.remove(connID)
	_, ok = r.get(connID)
	assert.False(t, ok)
	assert.Equal(t, 0, r.count())
}

func TestSessionReset(t *testing.T) {
	s := &domain.Session{
		ConnID:   uuid.New(),
		UserID:   7,
		Phase:    domain.PhaseInRoom,
		GameType: domain.GameTypeFriend,
		GameMode: domain.GameModeFast,
		FriendID: 9,
		RoomID:   3,
		Side:     domain.SideRight,
	}
	s.Reset()

	assert.Equal(t, domain.PhaseIdle, s.Phase)
	assert.Equal(t, domain.GameTypeNone, s.GameType)
	assert.Equal(t, domain.GameModeNone, s.GameMode)
	assert.Equal(t, int64(0), s.FriendID)
	assert.Equal(t, int64(0), s.RoomID)
	assert.Equal(t, domain.SideNone, s.Side)
	assert.Equal(t, int64(7), s.UserID, "identity survives a reset")
}

func TestFriendInviteRegistry(t *testing.T) {
	f := newFriendInviteRegistry()
	connID := uuid.New()

	_, ok := f.get(10)
	assert.False(t, ok)

	f.put(10, connID)
	got, ok := f.get(10)
	require.True(t, ok)
	assert.Equal(t, connID, got)

	f.remove(10)
	_, ok = f.get(10)
	assert.False(t, ok)
}
