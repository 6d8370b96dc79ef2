package httpUsecase

import (
	"context"

	"pong-service/domain"
	"pong-service/internal/game"
)

type PostgresRepository interface {
	RecentMatches(ctx context.Context, userID int64, limit int) ([]domain.MatchRecord, error)
}

type PresenceManager interface {
	IsOnline(ctx context.Context, userID int64) (bool, error)
}

type GameEngine interface {
	Stats() game.Stats
}
