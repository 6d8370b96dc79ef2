package bootstrap

import (
	"context"

	"pong-service/config"
	"pong-service/internal/initializer"
)

type PresenceManager interface {
	Close() error
	SetOnline(ctx context.Context, userID int64) error
	SetOffline(ctx context.Context, userID int64) error
	IsOnline(ctx context.Context, userID int64) (bool, error)
}

func InitPresence(config config.Config) PresenceManager {
	return initializer.InitPresence(config)
}
