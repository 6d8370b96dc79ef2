package game

import (
	"fmt"

	"pong-service/domain"

	"github.com/google/uuid"
)

// PlayerRegistry maps connection identity to per-session state. It holds no
// lock of its own: the engine serializes every mutation (individual sessions
// are only ever touched by one event at a time), while independent
// connections stay concurrent at the engine level.
type PlayerRegistry struct {
	sessions map[uuid.UUID]*domain.Session
}

func newPlayerRegistry() *PlayerRegistry {
	return &PlayerRegistry{sessions: make(map[uuid.UUID]*domain.Session)}
}

func (r *PlayerRegistry) register(connID uuid.UUID) (*domain.Session, error) {
	if _, exists := r.sessions[connID]; exists {
		return nil, fmt.Errorf("connection %s already registered", connID)
	}
	s := &domain.Session{
		ConnID:   connID,
		Phase:    domain.PhaseIdle,
		GameType: domain.GameTypeNone,
		GameMode: domain.GameModeNone,
		Side:     domain.SideNone,
	}
	r.sessions[connID] = s
	return s, nil
}

func (r *PlayerRegistry) get(connID uuid.UUID) (*domain.Session, bool) {
	s, ok := r.sessions[connID]
	return s, ok
}

func (r *PlayerRegistry) remove(connID uuid.UUID) {
	delete(r.sessions, connID)
}

func (r *PlayerRegistry) count() int {
	return len(r.sessions)
}
