package bootstrap

import (
	"context"

	"pong-service/config"
	"pong-service/domain"
	"pong-service/internal/initializer"
)

type PostgresRepository interface {
	Close() error
	SaveMatch(ctx context.Context, rec *domain.MatchRecord) error
	RecentMatches(ctx context.Context, userID int64, limit int) ([]domain.MatchRecord, error)
}

func InitDatabase(config config.Config) PostgresRepository {
	return initializer.InitDatabase(config)
}
