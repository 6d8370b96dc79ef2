package bootstrap

import (
	"context"

	"pong-service/config"
	"pong-service/domain"
	"pong-service/internal/initializer"
)

type Messaging interface {
	Close() error
	PublishMatchFinished(ctx context.Context, rec *domain.MatchRecord) error
}

func InitMessaging(config config.Config) Messaging {
	return initializer.InitMessaging(config)
}
