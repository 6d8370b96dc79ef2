package game

import (
	"pong-service/domain"

	"github.com/google/uuid"
)

// MatchQueue holds at most one pending connection per game mode. Pairing is
// strict FIFO with capacity one: whoever waits is matched against the next
// arrival in the same mode. The engine lock makes check-and-pop atomic, so
// two simultaneous joiners can never both see an occupied slot.
type MatchQueue struct {
	pending map[domain.GameMode]uuid.UUID
}

func newMatchQueue() *MatchQueue {
	return &MatchQueue{pending: make(map[domain.GameMode]uuid.UUID)}
}

// pop clears and returns the pending connection for mode, if any.
func (q *MatchQueue) pop(mode domain.GameMode) (uuid.UUID, bool) {
	connID, ok := q.pending[mode]
	if ok {
		delete(q.pending, mode)
	}
	return connID, ok
}

func (q *MatchQueue) put(mode domain.GameMode, connID uuid.UUID) {
	q.pending[mode] = connID
}

// holds reports whether connID is the current pending entry for mode.
func (q *MatchQueue) holds(mode domain.GameMode, connID uuid.UUID) bool {
	pending, ok := q.pending[mode]
	return ok && pending == connID
}

func (q *MatchQueue) clear(mode domain.GameMode) {
	delete(q.pending, mode)
}

func (q *MatchQueue) waiting() int {
	return len(q.pending)
}
