package game

import (
	"github.com/google/uuid"
)

// FriendInviteRegistry maps an inviter's user id to the connection waiting on
// their outbound invite. Mutual consent is checked on accept: the inviter's
// session must still name the accepter as the expected friend. Engine-locked,
// like PlayerRegistry.
type FriendInviteRegistry struct {
	pending map[int64]uuid.UUID
}

func newFriendInviteRegistry() *FriendInviteRegistry {
	return &FriendInviteRegistry{pending: make(map[int64]uuid.UUID)}
}

func (f *FriendInviteRegistry) put(userID int64, connID uuid.UUID) {
	f.pending[userID] = connID
}

func (f *FriendInviteRegistry) get(userID int64) (uuid.UUID, bool) {
	connID, ok := f.pending[userID]
	return connID, ok
}

func (f *FriendInviteRegistry) remove(userID int64) {
	delete(f.pending, userID)
}
